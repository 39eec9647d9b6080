package exif

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/barasher/go-exiftool"

	"photocopy/internal/domain"
)

// ExiftoolReader reads DateTimeOriginal through a long-running exiftool
// process. It only works with paths on the OS file system.
type ExiftoolReader struct {
	mu sync.Mutex
	et *exiftool.Exiftool
}

// Close stops the exiftool process if it was started.
func (r *ExiftoolReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.et == nil {
		return nil
	}
	err := r.et.Close()
	r.et = nil
	return err
}

func (r *ExiftoolReader) ensure() (*exiftool.Exiftool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.et != nil {
		return r.et, nil
	}
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	r.et = et
	return et, nil
}

func (r *ExiftoolReader) CaptureTimestamp(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	et, err := r.ensure()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	infos := et.ExtractMetadata(path)
	r.mu.Unlock()

	if len(infos) == 0 {
		return "", errors.New("exiftool returned no metadata")
	}
	info := infos[0]
	if info.Err != nil {
		return "", info.Err
	}
	if msg, ok := info.Fields["Error"].(string); ok {
		return "", errors.New(msg)
	}

	raw, ok := info.Fields["DateTimeOriginal"].(string)
	if !ok || raw == "" {
		return "", domain.ErrNoMetadata
	}
	return raw, nil
}
