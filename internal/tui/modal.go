package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/storeadmin/internal/ui"
)

// GateResult is what a key press in the confirmation modal asks for.
type GateResult int

const (
	GateNone GateResult = iota
	GateConfirm
	GateClose
)

// AlertModal is the confirmation gate shown before a delete. It is purely
// presentational: the form controller owns whether it is open.
type AlertModal struct {
	Title       string
	Description string

	// Cursor selects Cancel (0) or Continue (1).
	Cursor int
}

// NewAlertModal creates the delete confirmation modal with Cancel focused.
func NewAlertModal() AlertModal {
	return AlertModal{
		Title:       "Are you sure?",
		Description: "This action cannot be undone.",
	}
}

// Update handles a key press. While loading every key is swallowed.
func (m AlertModal) Update(msg tea.KeyMsg, loading bool) (AlertModal, GateResult) {
	if loading {
		return m, GateNone
	}

	switch msg.String() {
	case "esc", "n":
		return m, GateClose
	case "left", "h", "shift+tab":
		m.Cursor = 0
	case "right", "l", "tab":
		m.Cursor = 1
	case "y":
		return m, GateConfirm
	case "enter", " ":
		if m.Cursor == 1 {
			return m, GateConfirm
		}
		return m, GateClose
	}
	return m, GateNone
}

// View renders the modal box.
func (m AlertModal) View(loading bool) string {
	cancel := "Cancel"
	confirm := "Continue"
	if loading {
		confirm = "Deleting..."
	}

	var cancelBtn, confirmBtn string
	if m.Cursor == 0 && !loading {
		cancelBtn = SelectedButtonStyle.Render("→ " + cancel)
		confirmBtn = ButtonStyle.Render("  " + confirm)
	} else if !loading {
		cancelBtn = ButtonStyle.Render("  " + cancel)
		confirmBtn = DestructiveButtonStyle.Bold(true).Render("→ " + confirm)
	} else {
		cancelBtn = ButtonStyle.Render("  " + cancel)
		confirmBtn = ButtonStyle.Render("  " + confirm)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(ui.WarningColor).Bold(true).Render(ui.WarningMarker+" "+m.Title),
		"",
		lipgloss.NewStyle().Foreground(ui.TextColor).Render(m.Description),
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, cancelBtn, confirmBtn),
		"",
		lipgloss.NewStyle().Foreground(SubtleColor).Render("←/→: Select  •  Enter: Choose  •  y: Continue  •  Esc: Cancel"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.WarningColor).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)
}
