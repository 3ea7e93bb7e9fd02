package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/config"
	"github.com/procdash/procdash/internal/tui"
	"github.com/procdash/procdash/internal/tui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactive terminal preview of the dashboard",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	// Load config for theme
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(dataDir(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview error: %w", err)
	}

	return nil
}
