package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/storeadmin/internal/ui"
	"github.com/muurk/storeadmin/internal/version"
)

// Application branding
const AppName = "STOREADMIN"

// Layout constants
const (
	MinTerminalWidth = 64
	modalWidth       = 56
)

var (
	SubtleColor    = ui.MutedColor
	HighlightColor = ui.SuccessColor

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.PrimaryColor).
				Padding(0, 1)

	DisabledInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SubtleColor).
				Foreground(SubtleColor).
				Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Foreground(SubtleColor).
			Padding(0, 2).
			MarginRight(2)

	SelectedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(HighlightColor).
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 2).
				MarginRight(2)

	DestructiveButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ErrorColor).
				Foreground(ui.ErrorColor).
				Padding(0, 1)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header with app name and version, content, and a footer with help text.
func RenderApplicationContainer(content, footerText string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < 10 {
		terminalHeight = 10
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(ui.TextColor).Bold(true).Render(AppName),
		" ",
		lipgloss.NewStyle().Foreground(SubtleColor).Render(version.Version),
	)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		lipgloss.NewStyle().Width(terminalWidth-4).Padding(1, 2).Render(content),
		footerStyle.Render(footerText),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)
}

// RenderModal centers modal content over a dimmed full-screen backdrop.
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
