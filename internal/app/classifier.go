package app

import (
	"context"
	"path/filepath"

	"photocopy/internal/domain"
	"photocopy/internal/logging"
)

// Classifier lists the candidate files of a source tree.
type Classifier struct {
	FS     FileSystem
	Logger logging.Logger
}

// Classify returns the files under root whose extension is in exts. A
// directory's own files come first in name order, followed by each
// subdirectory's results in name order when recurse is set. Directories that
// cannot be listed are treated as empty.
func (c *Classifier) Classify(ctx context.Context, root string, exts domain.ExtensionSet, recurse bool) []domain.CandidateFile {
	stop := c.Logger.Measure("Scanning source directory")
	defer stop()

	var out []domain.CandidateFile
	c.walk(ctx, filepath.Clean(root), exts, recurse, &out)
	c.Logger.Verbosef("Found %d candidate files in %s", len(out), root)
	return out
}

func (c *Classifier) walk(ctx context.Context, dir string, exts domain.ExtensionSet, recurse bool, out *[]domain.CandidateFile) {
	if ctx.Err() != nil {
		return
	}

	entries, err := c.FS.ReadDir(dir)
	if err != nil {
		c.Logger.Warnf("Skipping unreadable directory %s: %v", dir, err)
		return
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		if exts.Matches(path) {
			*out = append(*out, domain.CandidateFile{Path: path})
		}
	}

	if !recurse {
		return
	}
	for _, sub := range subdirs {
		c.walk(ctx, sub, exts, recurse, out)
	}
}
