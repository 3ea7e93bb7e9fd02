package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/procdash/procdash/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, dataDir string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]eload  [q]uit"
	right := ""
	if dataDir != "" {
		right = fmt.Sprintf("Data: %s ", dataDir)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
