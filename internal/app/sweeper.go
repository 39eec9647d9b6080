package app

import (
	"context"
	"path/filepath"

	"photocopy/internal/logging"
)

// Sweeper removes directories left empty by a moving run.
type Sweeper struct {
	FS     FileSystem
	Logger logging.Logger
}

// Sweep removes empty directories below root bottom-up and returns how many
// were removed. When recurse is false only root itself is considered.
// Directories that cannot be listed or removed are left in place.
func (s *Sweeper) Sweep(ctx context.Context, root string, recurse bool) int {
	stop := s.Logger.Measure("Removing empty directories")
	defer stop()

	root = filepath.Clean(root)
	if !recurse {
		if s.removeIfEmpty(root) {
			return 1
		}
		return 0
	}
	return s.sweepChildren(ctx, root)
}

func (s *Sweeper) sweepChildren(ctx context.Context, dir string) int {
	entries, err := s.FS.ReadDir(dir)
	if err != nil {
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed
		}
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(dir, entry.Name())
		removed += s.sweepChildren(ctx, child)
		if s.removeIfEmpty(child) {
			removed++
		}
	}
	return removed
}

func (s *Sweeper) removeIfEmpty(dir string) bool {
	entries, err := s.FS.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	if err := s.FS.Remove(dir); err != nil {
		s.Logger.Verbosef("Leaving %s: %v", dir, err)
		return false
	}
	s.Logger.Verbosef("Removed empty directory %s", dir)
	return true
}
