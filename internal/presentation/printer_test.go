package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"photocopy/internal/domain"
)

func TestReportHidesSkipsUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.Report(domain.Result{Source: "/src/a.jpg", Outcome: domain.SkippedNoMetadata, Err: errors.New("no capture timestamp")})
	if buf.Len() != 0 {
		t.Fatalf("expected skip to be hidden, got %q", buf.String())
	}

	printer.Verbose = true
	printer.Report(domain.Result{Source: "/src/a.jpg", Outcome: domain.SkippedNoMetadata, Err: errors.New("no capture timestamp")})
	if got := buf.String(); got != "SKIP /src/a.jpg: no capture timestamp\n" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestReportTransferAndFailureLines(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.Report(domain.Result{Source: "/src/a.jpg", Destination: "/lib/2023/a.jpg", Outcome: domain.Copied})
	printer.Report(domain.Result{Source: "/src/b.jpg", Outcome: domain.FailedOpen, Err: errors.New("not an image")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "COPY /src/a.jpg -> /lib/2023/a.jpg" {
		t.Fatalf("unexpected copy line %q", lines[0])
	}
	if lines[1] != "FAIL /src/b.jpg: not an image" {
		t.Fatalf("unexpected failure line %q", lines[1])
	}
}

func TestDoneSummary(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	summary := domain.NewSummary()
	summary.Total = 3
	summary.Add(domain.Result{Outcome: domain.Moved})
	summary.Add(domain.Result{Outcome: domain.Moved})
	summary.Add(domain.Result{Outcome: domain.FailedHash})
	summary.DirsRemoved = 2
	summary.Elapsed = 1500 * time.Millisecond

	printer.Done(summary)
	output := buf.String()
	for _, want := range []string{"Processed 3 of 3 files in 1.5s.", "moved:", "failed_hash:", "Removed 2 empty directories.", "Done!"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output %q", want, output)
		}
	}
	if strings.Index(output, "moved:") > strings.Index(output, "failed_hash:") {
		t.Fatalf("expected outcomes in declaration order")
	}
}

func TestDoneCancelled(t *testing.T) {
	var buf bytes.Buffer
	Printer{Writer: &buf}.Done(domain.Summary{Cancelled: true})
	if !strings.Contains(buf.String(), "Cancelled.") || strings.Contains(buf.String(), "Done!") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
