package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/export"
)

var flagFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export charts as PNG and the tables as an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "all", "Export format: png, xlsx, or all")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadDataset()
	if err != nil {
		return err
	}
	dir := outDir(cfg)

	var written []string

	if flagFormat == "png" || flagFormat == "all" {
		roiPath := filepath.Join(dir, "roi_forecast.png")
		if err := export.WriteROIPNG(ds, roiPath); err != nil {
			return err
		}
		written = append(written, roiPath)

		deptPath := filepath.Join(dir, "savings_by_department.png")
		if err := export.WriteDepartmentsPNG(ds, deptPath); err != nil {
			return err
		}
		written = append(written, deptPath)
	}

	if flagFormat == "xlsx" || flagFormat == "all" {
		bookPath := filepath.Join(dir, "procurement_dashboard.xlsx")
		if err := export.WriteWorkbook(ds, bookPath); err != nil {
			return err
		}
		written = append(written, bookPath)
	}

	if len(written) == 0 {
		return fmt.Errorf("unknown format %q (want png, xlsx, or all)", flagFormat)
	}

	for _, path := range written {
		log.Debug().Str("path", path).Msg("exported")
	}

	fmt.Printf("Export complete. Files saved in '%s' directory:\n", dir)
	for _, path := range written {
		fmt.Printf("- %s\n", filepath.Base(path))
	}
	return nil
}
