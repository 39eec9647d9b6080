package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"photocopy/internal/domain"
)

// Sender is the part of *tea.Program the reporter needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Reporter forwards run events to a running program.
type Reporter struct {
	Program Sender
}

func (r Reporter) Started(total int) {
	r.Program.Send(StartedMsg{Total: total})
}

func (r Reporter) Report(result domain.Result) {
	r.Program.Send(ResultMsg{Result: result})
}

func (r Reporter) Done(summary domain.Summary) {
	r.Program.Send(DoneMsg{Summary: summary})
}
