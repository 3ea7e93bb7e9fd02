package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
)

// Workbook sheet names.
const (
	sheetKPIs        = "KPIs"
	sheetDepartments = "Departments"
	sheetMonthly     = "Monthly"
	sheetROI         = "ROI"
)

// WriteWorkbook writes the full dataset as a four-sheet XLSX workbook.
// Derived columns (previous value, signed change) use the same
// back-calculation as the dashboard.
func WriteWorkbook(ds model.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetKPIs)
	if err := writeKPISheet(f, ds.KPIs); err != nil {
		return err
	}
	if err := writeDepartmentSheet(f, ds.DepartmentTotals); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, ds.Monthly); err != nil {
		return err
	}
	if err := writeROISheet(f, ds.ROI, ds.Forecast); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeKPISheet(f *excelize.File, set model.KPISet) error {
	if err := writeHeader(f, sheetKPIs, []string{"KPI", "Current", "Previous", "Change", "Change %"}, 18); err != nil {
		return err
	}
	for i, ks := range pipeline.DeriveKPIs(set) {
		row := i + 2
		f.SetCellValue(sheetKPIs, fmt.Sprintf("A%d", row), ks.KPI.Name)
		f.SetCellValue(sheetKPIs, fmt.Sprintf("B%d", row), ks.KPI.Current)
		f.SetCellValue(sheetKPIs, fmt.Sprintf("C%d", row), ks.Previous)
		f.SetCellValue(sheetKPIs, fmt.Sprintf("D%d", row), cli.FormatDollarsSigned(ks.Delta))
		f.SetCellValue(sheetKPIs, fmt.Sprintf("E%d", row), cli.FormatPctChange(ks.KPI.PctChange))
	}
	return nil
}

func writeDepartmentSheet(f *excelize.File, totals []model.CategoryTotal) error {
	f.NewSheet(sheetDepartments)
	if err := writeHeader(f, sheetDepartments, []string{"Department", "Savings", "Share %"}, 16); err != nil {
		return err
	}
	sum := pipeline.SumTotals(totals)
	for i, t := range totals {
		row := i + 2
		f.SetCellValue(sheetDepartments, fmt.Sprintf("A%d", row), t.Category)
		f.SetCellValue(sheetDepartments, fmt.Sprintf("B%d", row), t.Value)
		if sum > 0 {
			f.SetCellValue(sheetDepartments, fmt.Sprintf("C%d", row), cli.FormatPercent(t.Value/sum))
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, monthly []model.TimeSeriesPoint) error {
	f.NewSheet(sheetMonthly)
	if err := writeHeader(f, sheetMonthly, []string{"Month", "Department", "Savings"}, 16); err != nil {
		return err
	}
	for i, p := range monthly {
		row := i + 2
		f.SetCellValue(sheetMonthly, fmt.Sprintf("A%d", row), p.Period)
		f.SetCellValue(sheetMonthly, fmt.Sprintf("B%d", row), p.Category)
		f.SetCellValue(sheetMonthly, fmt.Sprintf("C%d", row), p.Value)
	}
	return nil
}

func writeROISheet(f *excelize.File, actual, forecast []model.SeriesPoint) error {
	f.NewSheet(sheetROI)
	if err := writeHeader(f, sheetROI, []string{"Month", "Procurement ROI", "Forecast"}, 18); err != nil {
		return err
	}
	row := 2
	for _, p := range actual {
		f.SetCellValue(sheetROI, fmt.Sprintf("A%d", row), p.Period)
		f.SetCellValue(sheetROI, fmt.Sprintf("B%d", row), p.Value)
		row++
	}
	for _, p := range forecast {
		f.SetCellValue(sheetROI, fmt.Sprintf("A%d", row), p.Period)
		f.SetCellValue(sheetROI, fmt.Sprintf("C%d", row), p.Value)
		row++
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, width float64) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("addressing %s header: %w", sheet, err)
		}
		f.SetCellValue(sheet, cell, h)

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("addressing %s column: %w", sheet, err)
		}
		f.SetColWidth(sheet, col, col, width)
	}
	return nil
}
