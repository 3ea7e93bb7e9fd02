package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/config"
	"github.com/procdash/procdash/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults so re-running keeps prior answers.
	cfg, _ := config.Load()

	dataDirIn := cfg.Paths.DataDir
	outDirIn := cfg.Paths.OutDir
	titleIn := cfg.Dashboard.Title
	themeIn := cfg.Appearance.Theme
	save := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the data files are written and read.").
				Validate(notBlank).
				Value(&dataDirIn),
			huh.NewInput().
				Title("Output directory").
				Description("Where the dashboard and exports go.").
				Validate(notBlank).
				Value(&outDirIn),
			huh.NewInput().
				Title("Dashboard title").
				Value(&titleIn),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeIn),
			huh.NewConfirm().
				Title("Save configuration?").
				Value(&save),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup: %w", err)
	}

	if !save {
		fmt.Println("\n  Nothing saved.")
		return nil
	}

	cfg.Paths.DataDir = strings.TrimSpace(dataDirIn)
	cfg.Paths.OutDir = strings.TrimSpace(outDirIn)
	cfg.Dashboard.Title = strings.TrimSpace(titleIn)
	cfg.Appearance.Theme = themeIn

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `procdash setup` anytime to reconfigure.")
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
