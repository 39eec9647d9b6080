package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"photocopy/internal/domain"
	appErrors "photocopy/internal/errors"
	"photocopy/internal/logging"
)

// Engine transfers candidates into the library one at a time.
type Engine struct {
	FS       FileSystem
	Metadata MetadataReader
	Hasher   ContentHasher
	Logger   logging.Logger
}

// Run processes candidates in order and reports every outcome. It stops
// early only when ctx is cancelled.
func (e *Engine) Run(ctx context.Context, cfg domain.RunConfig, candidates []domain.CandidateFile, reporter Reporter) domain.Summary {
	stop := e.Logger.Measure("Transferring files")
	defer stop()

	if reporter == nil {
		reporter = nopReporter{}
	}

	summary := domain.NewSummary()
	summary.Total = len(candidates)
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}
		result := e.Process(ctx, cfg, candidate)
		summary.Add(result)
		e.logResult(result)
		reporter.Report(result)
	}
	return summary
}

// Process runs the metadata, resolve, collision and transfer steps for one
// file. Every failure is returned as a result, never as an error.
func (e *Engine) Process(ctx context.Context, cfg domain.RunConfig, candidate domain.CandidateFile) domain.Result {
	if cfg.FileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FileTimeout)
		defer cancel()
	}

	src := candidate.Path
	result := domain.Result{Source: src}
	fail := func(outcome domain.Outcome, kind appErrors.Kind, op, path string, err error) domain.Result {
		result.Outcome = outcome
		result.Err = appErrors.Wrap(kind, op, path, err)
		return result
	}

	raw, err := e.Metadata.CaptureTimestamp(ctx, src)
	if errors.Is(err, domain.ErrNoMetadata) {
		return fail(domain.SkippedNoMetadata, appErrors.MetadataFailure, "read metadata", src, err)
	}
	if err != nil {
		return fail(domain.FailedOpen, appErrors.MetadataFailure, "open image", src, err)
	}

	ts, err := domain.ParseCaptureTimestamp(raw)
	if err != nil {
		return fail(domain.SkippedInvalidMetadata, appErrors.MetadataFailure, "parse timestamp", src, err)
	}

	dest := domain.ResolveDestination(cfg.TargetDir, cfg.Template, ts, candidate.Extension())
	result.Destination = dest.FullPath()
	if err := e.FS.MkdirAll(dest.Directory, 0o755); err != nil {
		return fail(domain.FailedCreateDestination, appErrors.IOFailure, "mkdir", dest.Directory, err)
	}

	targets := []string{dest.FullPath(), dest.Disambiguated(candidate.Name()).FullPath()}
	target := ""
	for _, path := range targets {
		result.Destination = path
		if filepath.Clean(path) == filepath.Clean(src) {
			result.Outcome = domain.SkippedDuplicate
			return result
		}

		exists, err := e.FS.Exists(path)
		if err != nil {
			return fail(domain.FailedTransfer, appErrors.IOFailure, "stat", path, err)
		}
		if !exists {
			target = path
			break
		}

		same, err := e.sameContent(ctx, src, path)
		if err != nil {
			return fail(domain.FailedHash, appErrors.IOFailure, "hash", path, err)
		}
		if same {
			return e.skipDuplicate(cfg, result)
		}
	}
	if target == "" {
		return fail(domain.FailedTransfer, appErrors.IOFailure, "resolve collision", dest.Directory,
			fmt.Errorf("different files already occupy %s and %s", targets[0], targets[1]))
	}

	result.Destination = target
	if cfg.DeleteSource {
		if err := e.FS.MoveFile(ctx, src, target); err != nil {
			return fail(domain.FailedTransfer, appErrors.IOFailure, "move", target, err)
		}
		result.Outcome = domain.Moved
		return result
	}
	if err := e.FS.CopyFile(ctx, src, target); err != nil {
		return fail(domain.FailedTransfer, appErrors.IOFailure, "copy", target, err)
	}
	result.Outcome = domain.Copied
	return result
}

// skipDuplicate drops a source whose content already sits at the
// destination. The destination is never touched.
func (e *Engine) skipDuplicate(cfg domain.RunConfig, result domain.Result) domain.Result {
	result.Outcome = domain.SkippedDuplicate
	if !cfg.DeleteSource {
		return result
	}
	if err := e.FS.Remove(result.Source); err != nil {
		result.Err = appErrors.Wrap(appErrors.IOFailure, "remove duplicate", result.Source, err)
	}
	return result
}

func (e *Engine) sameContent(ctx context.Context, a, b string) (bool, error) {
	left, err := e.Hasher.Digest(ctx, a)
	if err != nil {
		return false, err
	}
	right, err := e.Hasher.Digest(ctx, b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(left, right), nil
}

func (e *Engine) logResult(result domain.Result) {
	log := e.Logger.WithFields(map[string]any{
		"src":     result.Source,
		"dst":     result.Destination,
		"outcome": result.Outcome.String(),
	})
	switch {
	case result.Outcome.IsFailure(), result.Outcome == domain.SkippedDuplicate && result.Err != nil:
		log.Warnf("%s", result.Detail())
	case result.Err != nil:
		log.Verbosef("%s", result.Detail())
	default:
		log.Verbosef("processed")
	}
}
