// Package cmd implements the procdash CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Paths]")
	fmt.Printf("    Data directory:   %s\n", dataDir(cfg))
	fmt.Printf("    Output directory: %s\n", outDir(cfg))
	fmt.Println()

	fmt.Println("  [Dashboard]")
	fmt.Printf("    Title:      %s\n", cfg.Dashboard.Title)
	if cfg.Dashboard.PlotlyCDN != "" {
		fmt.Printf("    Plotly CDN: %s\n", cfg.Dashboard.PlotlyCDN)
	}
	fmt.Println()

	fmt.Println("  [Charts]")
	fmt.Printf("    Donut hole: %.2f\n", cfg.Charts.DonutHole)
	fmt.Printf("    Pie pull:   %.2f\n", cfg.Charts.PiePull)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `procdash setup` to reconfigure.")
	return nil
}
