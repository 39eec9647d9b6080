package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// CandidateFile is a source file selected for processing.
type CandidateFile struct {
	Path string
}

// Name returns the file name including its extension.
func (c CandidateFile) Name() string {
	return filepath.Base(c.Path)
}

// Extension returns the suffix after the last dot, case preserved.
func (c CandidateFile) Extension() string {
	return Extension(c.Path)
}

// Extension returns the suffix of path after the last dot of its base name,
// without the dot. Names without a dot have no extension.
func Extension(path string) string {
	name := filepath.Base(path)
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// ExtensionSet is a case-insensitive set of accepted extensions.
type ExtensionSet map[string]struct{}

// ParseExtensions splits a user supplied list on commas and spaces. Empty
// parts and leading dots are dropped.
func ParseExtensions(list string) ExtensionSet {
	set := ExtensionSet{}
	parts := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, part := range parts {
		ext := strings.ToLower(strings.TrimLeft(part, "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

func (s ExtensionSet) Matches(path string) bool {
	ext := Extension(path)
	if ext == "" {
		return false
	}
	_, ok := s[strings.ToLower(ext)]
	return ok
}

// List returns the extensions in sorted order.
func (s ExtensionSet) List() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
