package hash

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"lukechampine.com/blake3"

	infrafs "photocopy/internal/infra/fs"
)

// DigestSize is the length in bytes of a content digest.
const DigestSize = 32

// Hasher digests whole files with BLAKE3.
type Hasher struct {
	Fs afero.Fs
}

func New(fsys afero.Fs) Hasher {
	return Hasher{Fs: fsys}
}

func (h Hasher) Digest(ctx context.Context, path string) ([]byte, error) {
	file, err := h.Fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sum := blake3.New(DigestSize, nil)
	if _, err := io.Copy(sum, infrafs.NewContextReader(ctx, file)); err != nil {
		return nil, err
	}
	return sum.Sum(nil), nil
}
