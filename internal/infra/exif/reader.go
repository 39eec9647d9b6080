package exif

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"photocopy/internal/domain"
)

// Reader extracts DateTimeOriginal with goexif.
type Reader struct {
	Fs afero.Fs
}

func NewReader(fsys afero.Fs) Reader {
	return Reader{Fs: fsys}
}

// CaptureTimestamp returns the raw DateTimeOriginal value of path. Decoding
// runs in its own goroutine so a deadline on ctx bounds the call even when
// the read blocks.
func (r Reader) CaptureTimestamp(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := r.read(path)
		done <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.raw, res.err
	}
}

func (r Reader) read(path string) (string, error) {
	file, err := r.Fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil && (x == nil || goexif.IsCriticalError(err)) {
		if isImage(file) {
			return "", domain.ErrNoMetadata
		}
		return "", fmt.Errorf("not a readable image: %w", err)
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		return "", domain.ErrNoMetadata
	}
	if str, err := tag.StringVal(); err == nil {
		return str, nil
	}
	return tag.String(), nil
}

// isImage reports whether one of the registered decoders accepts the file.
func isImage(file io.ReadSeeker) bool {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false
	}
	_, _, err := image.DecodeConfig(file)
	return err == nil
}
