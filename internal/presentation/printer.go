package presentation

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"photocopy/internal/domain"
)

// Printer writes per-file outcomes and the final summary as plain lines.
// Skips are only listed when Verbose is set.
type Printer struct {
	Writer  io.Writer
	Verbose bool
	Color   bool
}

func (p Printer) Started(total int) {
	fmt.Fprintf(p.Writer, "Found %d candidate files.\n", total)
}

func (p Printer) Report(result domain.Result) {
	if result.Outcome.IsSkip() && !p.Verbose {
		return
	}
	fmt.Fprintln(p.Writer, p.formatResult(result))
}

func (p Printer) Done(summary domain.Summary) {
	fmt.Fprintln(p.Writer)
	for _, line := range summaryLines(summary) {
		fmt.Fprintln(p.Writer, line)
	}
	if summary.Cancelled {
		fmt.Fprintln(p.Writer, p.paint(color.FgYellow, "Cancelled."))
		return
	}
	fmt.Fprintln(p.Writer, p.paint(color.FgGreen, "Done!"))
}

func (p Printer) formatResult(result domain.Result) string {
	tag, attr := outcomeTag(result.Outcome)
	line := fmt.Sprintf("%s %s", p.paint(attr, tag), result.Source)
	switch {
	case result.Outcome == domain.Moved || result.Outcome == domain.Copied:
		line += " -> " + result.Destination
	case result.Outcome == domain.SkippedDuplicate:
		line += " == " + result.Destination
	}
	if detail := result.Detail(); detail != "" {
		line += ": " + detail
	}
	return line
}

func (p Printer) paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func outcomeTag(outcome domain.Outcome) (string, color.Attribute) {
	switch outcome {
	case domain.Moved:
		return "MOVE", color.FgGreen
	case domain.Copied:
		return "COPY", color.FgGreen
	case domain.SkippedDuplicate:
		return "DUPL", color.FgCyan
	case domain.SkippedInvalidMetadata, domain.SkippedNoMetadata:
		return "SKIP", color.FgCyan
	default:
		return "FAIL", color.FgRed
	}
}

func summaryLines(summary domain.Summary) []string {
	lines := []string{fmt.Sprintf("Processed %d of %d files in %s.", summary.Processed(), summary.Total, summary.Elapsed.Round(time.Millisecond))}

	outcomes := make([]domain.Outcome, 0, len(summary.Counts))
	for outcome, count := range summary.Counts {
		if count > 0 {
			outcomes = append(outcomes, outcome)
		}
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i] < outcomes[j] })
	for _, outcome := range outcomes {
		lines = append(lines, fmt.Sprintf("  %-26s %d", outcome.String()+":", summary.Counts[outcome]))
	}

	if summary.DirsRemoved > 0 {
		lines = append(lines, fmt.Sprintf("Removed %d empty directories.", summary.DirsRemoved))
	}
	return lines
}
