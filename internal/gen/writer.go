package gen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/source"
)

// kpiDocument mirrors the JSON layout of the KPI file. Field order is the
// serialization order.
type kpiDocument struct {
	CostOfMaterial     float64 `json:"cost_of_material"`
	PctChangeMaterial  float64 `json:"pct_change_material"`
	CostOfAvoidance    float64 `json:"cost_of_avoidance"`
	PctChangeAvoidance float64 `json:"pct_change_avoidance"`
	Savings            float64 `json:"savings"`
	PctChangeSavings   float64 `json:"pct_change_savings"`
}

// WriteAll writes the five data files into dir, creating it if needed.
// Existing files are overwritten completely, never merged. Returns the
// written paths in generation order.
func WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	ds := Dataset()
	written := make([]string, 0, len(source.FileNames()))

	path := filepath.Join(dir, source.FileKPIs)
	if err := writeKPIs(path, ds.KPIs); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, source.FileDepartmentTotals)
	rows := make([][]string, 0, len(ds.DepartmentTotals))
	for _, t := range ds.DepartmentTotals {
		rows = append(rows, []string{t.Category, formatValue(t.Value)})
	}
	if err := writeCSV(path, []string{"Department", "Savings"}, rows); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, source.FileMonthlySavings)
	rows = make([][]string, 0, len(ds.Monthly))
	for _, p := range ds.Monthly {
		rows = append(rows, []string{p.Period, p.Category, formatValue(p.Value)})
	}
	if err := writeCSV(path, []string{"MonthYear", "Department", "Savings"}, rows); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, source.FileROI)
	if err := writeSeriesCSV(path, []string{"Month", "Procurement ROI"}, ds.ROI); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, source.FileForecast)
	if err := writeSeriesCSV(path, []string{"Month", "Forecast"}, ds.Forecast); err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
}

func writeKPIs(path string, k model.KPISet) error {
	doc := kpiDocument{
		CostOfMaterial:     k.CostOfMaterial.Current,
		PctChangeMaterial:  k.CostOfMaterial.PctChange,
		CostOfAvoidance:    k.CostOfAvoidance.Current,
		PctChangeAvoidance: k.CostOfAvoidance.PctChange,
		Savings:            k.Savings.Current,
		PctChangeSavings:   k.Savings.PctChange,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeSeriesCSV(path string, header []string, series []model.SeriesPoint) error {
	rows := make([][]string, 0, len(series))
	for _, p := range series {
		rows = append(rows, []string{p.Period, formatValue(p.Value)})
	}
	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// formatValue renders a numeric cell the shortest exact way, so whole-dollar
// values round-trip without a decimal point.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
