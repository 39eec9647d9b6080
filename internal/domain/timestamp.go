package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinYear is the earliest capture year accepted.
const MinYear = 1900

var (
	// ErrNoMetadata is returned by metadata readers when the image opens but
	// carries no capture timestamp.
	ErrNoMetadata = errors.New("no capture timestamp")

	ErrInvalidTimestamp = errors.New("invalid capture timestamp")
)

// CaptureTimestamp holds the six components of an embedded capture time as
// they appear in the metadata, so "05" stays "05".
//
// Only the token count, the digits-only shape and the year are checked.
// Values out of calendar range such as month 13 or hour 99 are accepted.
type CaptureTimestamp struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	Second string
}

// ParseCaptureTimestamp splits a "YYYY:MM:DD HH:MM:SS" shaped string on
// colons and spaces. Tokens beyond the sixth are ignored.
func ParseCaptureTimestamp(raw string) (CaptureTimestamp, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ':' || r == ' '
	})
	if len(tokens) < 6 {
		return CaptureTimestamp{}, fmt.Errorf("%w: %q has %d of 6 fields", ErrInvalidTimestamp, raw, len(tokens))
	}
	for _, token := range tokens[:6] {
		if !isDigits(token) {
			return CaptureTimestamp{}, fmt.Errorf("%w: %q has non-numeric field %q", ErrInvalidTimestamp, raw, token)
		}
	}

	year, err := strconv.Atoi(tokens[0])
	if err != nil {
		return CaptureTimestamp{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, raw, err)
	}
	if year < MinYear {
		return CaptureTimestamp{}, fmt.Errorf("%w: year %d before %d", ErrInvalidTimestamp, year, MinYear)
	}

	return CaptureTimestamp{
		Year:   tokens[0],
		Month:  tokens[1],
		Day:    tokens[2],
		Hour:   tokens[3],
		Minute: tokens[4],
		Second: tokens[5],
	}, nil
}

// Stem is the canonical file name without extension.
func (t CaptureTimestamp) Stem() string {
	return t.Year + "-" + t.Month + "-" + t.Day + " " + t.Hour + "-" + t.Minute + "-" + t.Second
}

func (t CaptureTimestamp) String() string {
	return t.Year + ":" + t.Month + ":" + t.Day + " " + t.Hour + ":" + t.Minute + ":" + t.Second
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
