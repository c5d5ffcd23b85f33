package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/storeadmin/internal/billboard"
)

// Header is the block printed above a command's output: the form heading
// plus the parameters the command runs with.
type Header struct {
	Title       string            // e.g., "Edit Billboard"
	Description string            // e.g., "Manage store preferences"
	Params      map[string]string // e.g., {"Store": "store-1"}
	Width       int
}

// NewHeader creates a header from the form heading.
func NewHeader(heading billboard.Heading, params map[string]string) *Header {
	return &Header{
		Title:       heading.Title,
		Description: heading.Description,
		Params:      params,
		Width:       GetTerminalWidth(),
	}
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := ClampWidth(h.Width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeadingTitleStyle.Render(h.Title),
		HeadingDescriptionStyle.Render(h.Description),
	)
	if len(h.Params) == 0 {
		return HeaderBorderStyle(width).Render(top)
	}

	// Map order is random; sort so output is stable.
	keys := make([]string, 0, len(h.Params))
	for k := range h.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	paramLines := make([]string, 0, len(keys))
	for _, key := range keys {
		paramLines = append(paramLines, ParamKeyStyle.Render(key+":")+" "+ParamValueStyle.Render(h.Params[key]))
	}

	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", max(width-6, 10)))

	content := lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(paramLines, "\n"))
	return HeaderBorderStyle(width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// RenderAlert renders a read-only informational alert such as the public
// API URL.
func RenderAlert(alert billboard.Alert, width int) string {
	width = ClampWidth(width)

	badge := BadgePublicStyle.Render("Public")
	if alert.Variant == billboard.AlertAdmin {
		badge = BadgeAdminStyle.Render("Admin")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		AlertTitleStyle.Render(alert.Title)+" "+badge,
		AlertCodeStyle.Render(alert.Description),
	)
	return AlertBoxStyle(width).Render(content)
}
