package app

import (
	"context"
	"errors"
	"time"

	"photocopy/internal/domain"
	"photocopy/internal/logging"
)

// Organizer runs a full pass: classify, transfer, sweep, report.
type Organizer struct {
	Classifier *Classifier
	Engine     *Engine
	Sweeper    *Sweeper
	Reporter   Reporter
	Logger     logging.Logger
}

func NewOrganizer(fs FileSystem, metadata MetadataReader, hasher ContentHasher, reporter Reporter, logger logging.Logger) *Organizer {
	return &Organizer{
		Classifier: &Classifier{FS: fs, Logger: logger},
		Engine:     &Engine{FS: fs, Metadata: metadata, Hasher: hasher, Logger: logger},
		Sweeper:    &Sweeper{FS: fs, Logger: logger},
		Reporter:   reporter,
		Logger:     logger,
	}
}

// Run always calls Reporter.Done once the pass is over, including when ctx
// was cancelled part way. The error is only for missing collaborators.
func (o *Organizer) Run(ctx context.Context, cfg domain.RunConfig) (domain.Summary, error) {
	if o.Classifier == nil || o.Engine == nil || o.Sweeper == nil {
		return domain.Summary{}, errors.New("organizer requires classifier, engine and sweeper")
	}
	if o.Engine.FS == nil || o.Engine.Metadata == nil || o.Engine.Hasher == nil {
		return domain.Summary{}, errors.New("engine requires FS, metadata reader and hasher")
	}

	reporter := o.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	start := time.Now()

	candidates := o.Classifier.Classify(ctx, cfg.SourceDir, cfg.Extensions, cfg.Recursive)
	reporter.Started(len(candidates))

	summary := o.Engine.Run(ctx, cfg, candidates, reporter)
	if cfg.DeleteSource && ctx.Err() == nil {
		summary.DirsRemoved = o.Sweeper.Sweep(ctx, cfg.SourceDir, cfg.Recursive)
	}
	if ctx.Err() != nil {
		summary.Cancelled = true
	}
	summary.Elapsed = time.Since(start)

	o.Logger.Verbosef("Processed %d of %d files, %d failures, %d directories removed",
		summary.Processed(), summary.Total, summary.Failures(), summary.DirsRemoved)
	reporter.Done(summary)
	return summary, nil
}
