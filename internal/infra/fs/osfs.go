package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/spf13/afero"
)

// AferoFS implements the application file system on top of an afero.Fs.
type AferoFS struct {
	Fs afero.Fs
}

func New(fsys afero.Fs) AferoFS {
	return AferoFS{Fs: fsys}
}

func NewOS() AferoFS {
	return AferoFS{Fs: afero.NewOsFs()}
}

func (a AferoFS) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.Fs, path)
}

func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

func (a AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.Fs, path)
}

func (a AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.Fs.MkdirAll(path, perm)
}

func (a AferoFS) Remove(path string) error {
	return a.Fs.Remove(path)
}

func (a AferoFS) CopyFile(ctx context.Context, src, dst string) error {
	srcFile, err := a.Fs.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", src)
	}

	dstFile, err := a.Fs.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, NewContextReader(ctx, srcFile)); err != nil {
		dstFile.Close()
		a.Fs.Remove(dst)
		return err
	}
	if err := dstFile.Close(); err != nil {
		a.Fs.Remove(dst)
		return err
	}
	return nil
}

// MoveFile renames src to dst. Across devices it copies and then removes src.
func (a AferoFS) MoveFile(ctx context.Context, src, dst string) error {
	exists, err := a.Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return &fs.PathError{Op: "move", Path: dst, Err: fs.ErrExist}
	}

	err = a.Fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := a.CopyFile(ctx, src, dst); err != nil {
		return err
	}
	if err := a.Fs.Remove(src); err != nil {
		a.Fs.Remove(dst)
		return err
	}
	return nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

// NewContextReader returns a reader that fails with the context's error once
// ctx is done. It checks between reads and cannot interrupt a blocked read.
func NewContextReader(ctx context.Context, r io.Reader) io.Reader {
	return contextReader{ctx: ctx, r: r}
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
