package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the CLI output and the interactive form
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success toasts
	ErrorColor   = lipgloss.Color("#FF5555") // Red - error toasts, destructive actions
	WarningColor = lipgloss.Color("#FFA500") // Orange - confirmation gate
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeadingTitleStyle is for the form title (e.g., "Edit Billboard")
	HeadingTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// HeadingDescriptionStyle is for the line under the title
	HeadingDescriptionStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// ParamKeyStyle is for header parameter keys (e.g., "Store:")
	ParamKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// ParamValueStyle is for header parameter values
	ParamValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// SuccessToastStyle is for success notifications
	SuccessToastStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorToastStyle is for failure notifications
	ErrorToastStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// AlertTitleStyle is for the API alert title
	AlertTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// AlertCodeStyle renders the API URL as inline code
	AlertCodeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("#303030")).
			Padding(0, 1)

	// BadgePublicStyle marks a public alert
	BadgePublicStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(SuccessColor).
				Padding(0, 1)

	// BadgeAdminStyle marks an admin-only alert
	BadgeAdminStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(ErrorColor).
			Padding(0, 1)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// ClampWidth keeps width within the supported range.
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// HeaderBorderStyle returns the border style for command headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Padding(0, 1)
}

// AlertBoxStyle returns the border style for informational alerts
func AlertBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-2).
		Padding(0, 1)
}

// WarningBoxStyle returns the border style for the confirmation gate
func WarningBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2)
}
