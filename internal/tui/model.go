package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"photocopy/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseTransferring
	PhaseDone
	PhaseError
)

const recentLimit = 6

// Messages for the TUI
type (
	StartedMsg struct {
		Total int
	}
	ResultMsg struct {
		Result domain.Result
	}
	DoneMsg struct {
		Summary domain.Summary
	}
	ErrorMsg struct {
		Err error
	}
)

// Config for the TUI
type Config struct {
	SourceDir    string
	TargetDir    string
	DeleteSource bool
	// Cancel is called when the user quits before the run is over.
	Cancel func()
}

// Model is the main TUI model
type Model struct {
	config   Config
	Phase    Phase
	spinner  spinner.Model
	progress progress.Model
	total    int
	current  int
	failures int
	recent   []domain.Result
	Summary  domain.Summary
	Err      error
	Quitting bool
	width    int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.Phase == PhaseScanning || m.Phase == PhaseTransferring {
				if m.config.Cancel != nil {
					m.config.Cancel()
				}
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case StartedMsg:
		m.total = msg.Total
		m.Phase = PhaseTransferring
		return m, nil

	case ResultMsg:
		m.current++
		if msg.Result.Outcome.IsFailure() {
			m.failures++
		}
		m.recent = append(m.recent, msg.Result)
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}
		if m.total > 0 {
			return m, m.progress.SetPercent(float64(m.current) / float64(m.total))
		}
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Summary = msg.Summary
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseTransferring {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning source...", m.spinner.View()))
	case PhaseTransferring:
		b.WriteString(m.renderTransfer())
	case PhaseDone:
		b.WriteString(m.renderRecent())
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("📷 PhotoCopy")
	mode := "copy"
	if m.config.DeleteSource {
		mode = "move"
	}
	subtitle := subtitleStyle.Render(fmt.Sprintf("Sorting photos by capture date (%s)", mode))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderTransfer() string {
	var b strings.Builder

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}

	b.WriteString(fmt.Sprintf("%s Transferring...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))
	b.WriteString(fmt.Sprintf("  %s %s",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.current, m.total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))
	if m.failures > 0 {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s %d failed", iconError, m.failures)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderRecent())

	return b.String()
}

func (m Model) renderRecent() string {
	if len(m.recent) == 0 {
		return dimStyle.Render("  No files processed") + "\n"
	}
	var b strings.Builder
	for _, result := range m.recent {
		b.WriteString("  ")
		b.WriteString(formatResult(result))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	counts := m.Summary.Counts
	transferred := counts[domain.Moved] + counts[domain.Copied]
	skipped := counts[domain.SkippedDuplicate] + counts[domain.SkippedInvalidMetadata] + counts[domain.SkippedNoMetadata]

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Transferred:"), successStyle.Render(fmt.Sprintf("%s %d", iconSuccess, transferred))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Duplicates:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, counts[domain.SkippedDuplicate]))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Other skips:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, skipped-counts[domain.SkippedDuplicate]))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Failures:"), errorStyle.Render(fmt.Sprintf("%s %d", iconError, m.Summary.Failures()))))
	if m.Summary.DirsRemoved > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Dirs removed:"), statValueStyle.Render(fmt.Sprintf("%d", m.Summary.DirsRemoved))))
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Elapsed:"), statValueStyle.Render(m.Summary.Elapsed.Round(time.Millisecond).String())))

	if m.Summary.Cancelled {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Cancelled before all files were processed"))
	} else {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("Done!"))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(failColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning, PhaseTransferring:
		help = "Press q to stop"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func formatResult(result domain.Result) string {
	name := fileNameStyle.Render(shortenPath(result.Source))
	switch {
	case result.Outcome == domain.Moved || result.Outcome == domain.Copied:
		return fmt.Sprintf("%s %s %s %s", successStyle.Render(iconSuccess), name, iconArrow, dateStyle.Render(shortenPath(result.Destination)))
	case result.Outcome.IsSkip():
		return fmt.Sprintf("%s %s %s", dimStyle.Render(iconSkipped), name, dimStyle.Render(result.Outcome.String()))
	default:
		return fmt.Sprintf("%s %s %s", errorStyle.Render(iconError), name, warningStyle.Render(result.Detail()))
	}
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
