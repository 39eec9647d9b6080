package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"photocopy/internal/domain"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) { r.msgs = append(r.msgs, msg) }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestModelFollowsRun(t *testing.T) {
	m := NewModel(Config{SourceDir: "/src", TargetDir: "/lib"})
	if m.Phase != PhaseScanning {
		t.Fatalf("expected scanning phase")
	}

	m = update(t, m, StartedMsg{Total: 2})
	if m.Phase != PhaseTransferring || m.total != 2 {
		t.Fatalf("unexpected state after start: %+v", m.Phase)
	}

	m = update(t, m, ResultMsg{Result: domain.Result{Source: "/src/a.jpg", Destination: "/lib/a.jpg", Outcome: domain.Copied}})
	m = update(t, m, ResultMsg{Result: domain.Result{Source: "/src/b.jpg", Outcome: domain.FailedOpen, Err: errors.New("broken")}})
	if m.current != 2 || m.failures != 1 {
		t.Fatalf("unexpected counters current=%d failures=%d", m.current, m.failures)
	}
	if !strings.Contains(m.View(), "2/2 files") {
		t.Fatalf("expected progress count in view")
	}

	summary := domain.NewSummary()
	summary.Total = 2
	summary.Add(domain.Result{Outcome: domain.Copied})
	summary.Add(domain.Result{Outcome: domain.FailedOpen})
	m = update(t, m, DoneMsg{Summary: summary})
	if m.Phase != PhaseDone {
		t.Fatalf("expected done phase")
	}
	if !strings.Contains(m.View(), "Done!") {
		t.Fatalf("expected completion in view")
	}
}

func TestModelRecentIsBounded(t *testing.T) {
	m := update(t, NewModel(Config{}), StartedMsg{Total: 20})
	for i := 0; i < 20; i++ {
		m = update(t, m, ResultMsg{Result: domain.Result{Outcome: domain.SkippedDuplicate}})
	}
	if len(m.recent) != recentLimit {
		t.Fatalf("expected %d recent results, got %d", recentLimit, len(m.recent))
	}
}

func TestQuitCancelsRunningTransfer(t *testing.T) {
	cancelled := false
	m := NewModel(Config{Cancel: func() { cancelled = true }})
	m = update(t, m, StartedMsg{Total: 1})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !cancelled || !m.Quitting {
		t.Fatalf("expected quit to cancel the run")
	}
}

func TestErrorPhase(t *testing.T) {
	m := update(t, NewModel(Config{}), ErrorMsg{Err: errors.New("boom")})
	if m.Phase != PhaseError || !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error view")
	}
}

func TestReporterSendsMessages(t *testing.T) {
	sender := &recordingSender{}
	r := Reporter{Program: sender}
	r.Started(1)
	r.Report(domain.Result{Outcome: domain.Copied})
	r.Done(domain.NewSummary())

	if len(sender.msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(sender.msgs))
	}
	if _, ok := sender.msgs[0].(StartedMsg); !ok {
		t.Fatalf("unexpected first message %T", sender.msgs[0])
	}
	if _, ok := sender.msgs[2].(DoneMsg); !ok {
		t.Fatalf("unexpected last message %T", sender.msgs[2])
	}
}
