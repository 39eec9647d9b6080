package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	accentColor  = lipgloss.Color("#D9895B")
	okColor      = lipgloss.Color("#6CC9A0")
	cautionColor = lipgloss.Color("#F2B134")
	failColor    = lipgloss.Color("#E05A6F")
	borderColor  = lipgloss.Color("#5F6673")
	plainColor   = lipgloss.Color("#EEF0F3")
	faintColor   = lipgloss.Color("#A0A7B3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(faintColor).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(okColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(borderColor).
			MarginTop(1).
			MarginBottom(1)

	fileNameStyle = lipgloss.NewStyle().
			Foreground(plainColor)

	dateStyle = lipgloss.NewStyle().
			Foreground(faintColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(faintColor)

	countStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(okColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(cautionColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(failColor).
			Bold(true)

	highlightBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(1, 2).
				MarginTop(1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(faintColor).
			Width(16)

	statValueStyle = lipgloss.NewStyle().
			Foreground(plainColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(borderColor).
			Italic(true).
			MarginTop(2)

	iconSkipped = "○"
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	iconFolder  = "📁"
)
