package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Terminal summary of the dashboard numbers",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("\n  No data files found.")
			fmt.Println("  Run `procdash generate` to create them, then come back!")
			return nil
		}
		return err
	}

	stats := pipeline.DeriveKPIs(ds.KPIs)
	periods := pipeline.Periods(ds.Monthly)
	latest := ""
	if len(periods) > 0 {
		latest = periods[len(periods)-1]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROCUREMENT SAVINGS  %s", latest)))
	fmt.Println()

	// KPI table
	kpiRows := make([][]string, 0, len(stats))
	for _, ks := range stats {
		kpiRows = append(kpiRows, []string{
			ks.KPI.Name,
			cli.FormatDollars(ks.KPI.Current),
			cli.FormatDollars(ks.Previous),
			cli.FormatDollarsSigned(ks.Delta),
			cli.FormatPctChange(ks.KPI.PctChange),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"KPI", "Current", "Previous", "Change", "Change %"},
		Rows:    kpiRows,
	}))

	// Department table
	total := pipeline.SumTotals(ds.DepartmentTotals)
	deptRows := make([][]string, 0, len(ds.DepartmentTotals)+2)
	for _, d := range ds.DepartmentTotals {
		share := ""
		if total > 0 {
			share = cli.FormatPercent(d.Value / total)
		}
		deptRows = append(deptRows, []string{d.Category, cli.FormatDollars(d.Value), share})
	}
	deptRows = append(deptRows, []string{"---"})
	deptRows = append(deptRows, []string{"TOTAL", cli.FormatDollars(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Department",
		Headers: []string{"Department", "Savings", "Share"},
		Rows:    deptRows,
	}))

	// Month-over-month comparison
	periodTotals := pipeline.PeriodTotals(ds.Monthly, periods)
	if len(periodTotals) >= 2 {
		cur := periodTotals[len(periodTotals)-1]
		prev := periodTotals[len(periodTotals)-2]
		maxTotal := cur.Value
		if prev.Value > maxTotal {
			maxTotal = prev.Value
		}
		fmt.Printf("  Month over Month\n")
		fmt.Printf("  %-8s  %s  %s\n",
			cur.Period,
			cli.RenderHorizontalBar(cur.Value, maxTotal, 30),
			cli.FormatDollars(cur.Value))
		fmt.Printf("  %-8s  %s  %s\n\n",
			prev.Period,
			cli.RenderHorizontalBar(prev.Value, maxTotal, 30),
			cli.FormatDollars(prev.Value))
	}

	// Trend sparklines
	fmt.Printf("  Savings Trend  %s\n", cli.RenderSparkline(pipeline.Values(periodTotals)))
	fmt.Printf("  ROI Trend      %s\n", cli.RenderSparkline(pipeline.Values(ds.ROI)))
	fmt.Println()

	return nil
}
