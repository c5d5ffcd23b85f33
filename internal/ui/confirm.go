package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDestructive displays a warning box and asks the user to type
// phrase to proceed. It returns true only on an exact match; EOF or any
// other input cancels.
func ConfirmDestructive(in io.Reader, out io.Writer, title string, warnings []string, phrase string) bool {
	width := GetTerminalWidth()

	lines := []string{
		"",
		lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Render(fmt.Sprintf("   %s  %s", WarningMarker, title)),
		"",
	}

	bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, warning := range warnings {
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	_, _ = fmt.Fprintln(out, WarningBoxStyle(width).Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprintln(out)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", phrase)))

	input, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && input == "" {
		return false
	}

	if strings.TrimSpace(input) == phrase {
		return true
	}

	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	_, _ = fmt.Fprintln(out, cancelStyle.Render("  Operation cancelled."))
	return false
}

// ConfirmBillboardDelete is the confirmation gate for deleting a store's
// billboard from the command line.
func ConfirmBillboardDelete(in io.Reader, out io.Writer, storeID, phrase string) bool {
	return ConfirmDestructive(in, out,
		"Are you sure?",
		[]string{
			"This action cannot be undone.",
			fmt.Sprintf("The billboard for store %s will be deleted.", storeID),
			"Categories that use this billboard must be removed first.",
		},
		phrase,
	)
}
