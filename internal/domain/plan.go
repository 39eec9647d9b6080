package domain

import "time"

// RunConfig is the immutable configuration of a single run.
type RunConfig struct {
	SourceDir    string
	TargetDir    string
	Extensions   ExtensionSet
	Template     string
	Recursive    bool
	DeleteSource bool
	FileTimeout  time.Duration
}

type Outcome int

const (
	Moved Outcome = iota
	Copied
	SkippedDuplicate
	SkippedInvalidMetadata
	SkippedNoMetadata
	FailedOpen
	FailedCreateDestination
	FailedTransfer
	FailedHash
)

var outcomeNames = [...]string{
	Moved:                   "moved",
	Copied:                  "copied",
	SkippedDuplicate:        "skipped_duplicate",
	SkippedInvalidMetadata:  "skipped_invalid_metadata",
	SkippedNoMetadata:       "skipped_no_metadata",
	FailedOpen:              "failed_open",
	FailedCreateDestination: "failed_create_destination",
	FailedTransfer:          "failed_transfer",
	FailedHash:              "failed_hash",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

func (o Outcome) IsFailure() bool {
	return o >= FailedOpen
}

func (o Outcome) IsSkip() bool {
	return o == SkippedDuplicate || o == SkippedInvalidMetadata || o == SkippedNoMetadata
}

// Result is the outcome of processing one candidate.
type Result struct {
	Source      string
	Destination string
	Outcome     Outcome
	Err         error
}

// Detail is the optional message attached to a result.
func (r Result) Detail() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Summary aggregates a run.
type Summary struct {
	Total       int
	Counts      map[Outcome]int
	DirsRemoved int
	Cancelled   bool
	Elapsed     time.Duration
}

func NewSummary() Summary {
	return Summary{Counts: map[Outcome]int{}}
}

func (s *Summary) Add(result Result) {
	if s.Counts == nil {
		s.Counts = map[Outcome]int{}
	}
	s.Counts[result.Outcome]++
}

// Processed is the number of candidates that received an outcome.
func (s Summary) Processed() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

func (s Summary) Failures() int {
	n := 0
	for outcome, c := range s.Counts {
		if outcome.IsFailure() {
			n += c
		}
	}
	return n
}
