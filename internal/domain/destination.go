package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var templateToken = regexp.MustCompile(`%[YyMmDd]`)

// DestinationPath is where a file lands inside the library.
type DestinationPath struct {
	Directory string
	FileName  string
	Stem      string
}

func (d DestinationPath) FullPath() string {
	return filepath.Join(d.Directory, d.FileName)
}

// Disambiguated returns the path used when a different file already occupies
// the canonical name: the stem, an underscore, then the original file name.
func (d DestinationPath) Disambiguated(originalName string) DestinationPath {
	return DestinationPath{
		Directory: d.Directory,
		FileName:  d.Stem + "_" + originalName,
		Stem:      d.Stem,
	}
}

// ExpandTemplate replaces %Y, %M and %D (any case) with the timestamp's
// year, month and day.
func ExpandTemplate(template string, ts CaptureTimestamp) string {
	return templateToken.ReplaceAllStringFunc(template, func(token string) string {
		switch strings.ToUpper(token) {
		case "%Y":
			return ts.Year
		case "%M":
			return ts.Month
		default:
			return ts.Day
		}
	})
}

// ResolveDestination computes the target directory below root and the
// canonical file name. sourceExtension is kept verbatim.
func ResolveDestination(root, template string, ts CaptureTimestamp, sourceExtension string) DestinationPath {
	dir := filepath.Join(root, filepath.FromSlash(ExpandTemplate(template, ts)))
	stem := ts.Stem()
	return DestinationPath{
		Directory: dir,
		FileName:  stem + "." + sourceExtension,
		Stem:      stem,
	}
}
