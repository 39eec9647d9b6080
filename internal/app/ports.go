package app

import (
	"context"
	"io/fs"

	"photocopy/internal/domain"
)

type FileSystem interface {
	// ReadDir lists a directory sorted by name.
	ReadDir(path string) ([]fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	// CopyFile never overwrites an existing dst.
	CopyFile(ctx context.Context, src, dst string) error
	// MoveFile never overwrites an existing dst.
	MoveFile(ctx context.Context, src, dst string) error
	Remove(path string) error
}

// MetadataReader returns the raw capture timestamp string of an image. It
// returns domain.ErrNoMetadata when the image has no timestamp and any other
// error when the file cannot be opened as an image.
type MetadataReader interface {
	CaptureTimestamp(ctx context.Context, path string) (string, error)
}

type ContentHasher interface {
	Digest(ctx context.Context, path string) ([]byte, error)
}

// Reporter receives per-file outcomes. Done is called exactly once per run.
type Reporter interface {
	Started(total int)
	Report(result domain.Result)
	Done(summary domain.Summary)
}

type nopReporter struct{}

func (nopReporter) Started(int)          {}
func (nopReporter) Report(domain.Result) {}
func (nopReporter) Done(domain.Summary)  {}
