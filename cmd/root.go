package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/config"
	"github.com/procdash/procdash/internal/logging"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/source"
)

var (
	flagDataDir string
	flagOutDir  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "procdash",
	Short: "Procurement savings dashboard CLI",
	Long:  "Generate the procurement savings dataset, render the HTML dashboard, and inspect the numbers from the terminal.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := "info"
		if flagVerbose {
			level = "debug"
		}
		logging.SetGlobal(logging.New(logging.Config{Level: level, Pretty: true}))
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the data files (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out-dir", "o", "", "Directory for rendered output (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// dataDir resolves the data directory: the flag wins over the config file.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return cfg.Paths.DataDir
}

// outDir resolves the output directory: the flag wins over the config file.
func outDir(cfg config.Config) string {
	if flagOutDir != "" {
		return flagOutDir
	}
	return cfg.Paths.OutDir
}

// loadDataset is the shared loading path used by the read commands.
func loadDataset() (model.Dataset, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Dataset{}, cfg, fmt.Errorf("loading config: %w", err)
	}

	dir := dataDir(cfg)
	log.Debug().Str("dir", dir).Msg("loading data files")

	ds, err := source.LoadAll(dir)
	if err != nil {
		return model.Dataset{}, cfg, err
	}

	log.Debug().
		Int("departments", len(ds.DepartmentTotals)).
		Int("monthly_rows", len(ds.Monthly)).
		Int("roi_months", len(ds.ROI)).
		Msg("dataset loaded")

	return ds, cfg, nil
}
