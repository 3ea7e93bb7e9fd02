package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the HTML dashboard",
	Long:  "Build the self-contained dashboard page from the data files and write it to the output directory.",
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadDataset()
	if err != nil {
		return err
	}

	spec := render.SpecFromConfig(cfg)
	outPath := filepath.Join(outDir(cfg), "dashboard.html")

	log.Debug().Str("path", outPath).Msg("writing dashboard")

	if err := render.WriteDashboard(spec, ds, outPath); err != nil {
		return err
	}

	fmt.Printf("Dashboard created successfully! -> %s\n", outPath)
	return nil
}
