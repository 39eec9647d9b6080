package app

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"photocopy/internal/domain"
	infrafs "photocopy/internal/infra/fs"
)

func candidatePaths(candidates []domain.CandidateFile) []string {
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.Path)
	}
	return paths
}

func TestClassifyRecursiveOrder(t *testing.T) {
	mem := newMemFS(t, map[string]string{
		"/a/b.jpg":          "b",
		"/a/a.jpg":          "a",
		"/a/notes.txt":      "n",
		"/a/sub/c.jpg":      "c",
		"/a/sub/deep/e.JPG": "e",
		"/a/zed/d.jpeg":     "d",
		"/a/z.jpg":          "z",
	})
	classifier := Classifier{FS: infrafs.New(mem)}

	got := candidatePaths(classifier.Classify(context.Background(), "/a", domain.ParseExtensions("jpg,jpeg"), true))
	want := []string{
		filepath.Join("/a", "a.jpg"),
		filepath.Join("/a", "b.jpg"),
		filepath.Join("/a", "z.jpg"),
		filepath.Join("/a", "sub", "c.jpg"),
		filepath.Join("/a", "sub", "deep", "e.JPG"),
		filepath.Join("/a", "zed", "d.jpeg"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order:\n got %v\nwant %v", got, want)
	}
}

func TestClassifyNonRecursive(t *testing.T) {
	mem := newMemFS(t, map[string]string{
		"/a/b.jpg":     "b",
		"/a/a.jpg":     "a",
		"/a/sub/c.jpg": "c",
	})
	classifier := Classifier{FS: infrafs.New(mem)}

	got := candidatePaths(classifier.Classify(context.Background(), "/a", domain.ParseExtensions("jpg"), false))
	want := []string{filepath.Join("/a", "a.jpg"), filepath.Join("/a", "b.jpg")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestClassifyTreatsUnreadableDirectoryAsEmpty(t *testing.T) {
	mem := newMemFS(t, map[string]string{
		"/a/a.jpg":        "a",
		"/a/locked/b.jpg": "b",
		"/a/open/c.jpg":   "c",
	})
	classifier := Classifier{FS: faultyFS{
		FileSystem: infrafs.New(mem),
		unreadable: map[string]bool{filepath.Join("/a", "locked"): true},
	}}

	got := candidatePaths(classifier.Classify(context.Background(), "/a", domain.ParseExtensions("jpg"), true))
	want := []string{filepath.Join("/a", "a.jpg"), filepath.Join("/a", "open", "c.jpg")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestClassifyMissingRoot(t *testing.T) {
	classifier := Classifier{FS: infrafs.New(newMemFS(t, nil))}
	if got := classifier.Classify(context.Background(), "/missing", domain.ParseExtensions("jpg"), true); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}
