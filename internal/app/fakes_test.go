package app

import (
	"context"
	"errors"
	"io/fs"
	"sort"
	"testing"

	"github.com/spf13/afero"

	"photocopy/internal/domain"
	infrafs "photocopy/internal/infra/fs"
	"photocopy/internal/infra/hash"
)

type mockExif struct {
	timestamps map[string]string
	errs       map[string]error
}

func (m mockExif) CaptureTimestamp(ctx context.Context, path string) (string, error) {
	if err, ok := m.errs[path]; ok {
		return "", err
	}
	if raw, ok := m.timestamps[path]; ok {
		return raw, nil
	}
	return "", domain.ErrNoMetadata
}

type failingHasher struct{}

func (failingHasher) Digest(ctx context.Context, path string) ([]byte, error) {
	return nil, errors.New("read failed")
}

// faultyFS wraps a real file system and fails selected operations.
type faultyFS struct {
	FileSystem
	unreadable map[string]bool
	mkdirFails bool
}

func (f faultyFS) ReadDir(path string) ([]fs.FileInfo, error) {
	if f.unreadable[path] {
		return nil, fs.ErrPermission
	}
	return f.FileSystem.ReadDir(path)
}

func (f faultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.mkdirFails {
		return fs.ErrPermission
	}
	return f.FileSystem.MkdirAll(path, perm)
}

type recordingReporter struct {
	started int
	results []domain.Result
	done    []domain.Summary
}

func (r *recordingReporter) Started(total int)           { r.started = total }
func (r *recordingReporter) Report(result domain.Result) { r.results = append(r.results, result) }
func (r *recordingReporter) Done(summary domain.Summary) { r.done = append(r.done, summary) }

func newMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(mem, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return mem
}

func newEngine(mem afero.Fs, exif MetadataReader) *Engine {
	return &Engine{
		FS:       infrafs.New(mem),
		Metadata: exif,
		Hasher:   hash.New(mem),
	}
}

func readFile(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(mem afero.Fs, path string) bool {
	ok, _ := afero.Exists(mem, path)
	return ok
}

// listFiles returns every regular file below root with its content.
func listFiles(t *testing.T, mem afero.Fs, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := afero.Walk(mem, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			out[path] = readFile(t, mem, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
