package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/procdash/procdash/internal/model"
)

// kpiDocument mirrors procurement_kpis.json. Pointers distinguish a missing
// key from a legitimate zero.
type kpiDocument struct {
	CostOfMaterial     *float64 `json:"cost_of_material"`
	PctChangeMaterial  *float64 `json:"pct_change_material"`
	CostOfAvoidance    *float64 `json:"cost_of_avoidance"`
	PctChangeAvoidance *float64 `json:"pct_change_avoidance"`
	Savings            *float64 `json:"savings"`
	PctChangeSavings   *float64 `json:"pct_change_savings"`
}

// LoadAll reads the full dataset from dir. Any missing or malformed file
// aborts the load; there is no partial result.
func LoadAll(dir string) (model.Dataset, error) {
	var ds model.Dataset

	kpis, err := LoadKPIs(filepath.Join(dir, FileKPIs))
	if err != nil {
		return ds, err
	}

	totals, err := LoadCategoryTotals(filepath.Join(dir, FileDepartmentTotals))
	if err != nil {
		return ds, err
	}

	monthly, err := LoadMonthly(filepath.Join(dir, FileMonthlySavings))
	if err != nil {
		return ds, err
	}

	roi, err := LoadSeries(filepath.Join(dir, FileROI), "Month", "Procurement ROI")
	if err != nil {
		return ds, err
	}

	forecast, err := LoadSeries(filepath.Join(dir, FileForecast), "Month", "Forecast")
	if err != nil {
		return ds, err
	}

	ds = model.Dataset{
		KPIs:             kpis,
		DepartmentTotals: totals,
		Monthly:          monthly,
		ROI:              roi,
		Forecast:         forecast,
	}
	return ds, nil
}

// LoadKPIs reads the KPI JSON file. All six keys must be present.
func LoadKPIs(path string) (model.KPISet, error) {
	var set model.KPISet

	data, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var doc kpiDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return set, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	required := []struct {
		key string
		val *float64
	}{
		{"cost_of_material", doc.CostOfMaterial},
		{"pct_change_material", doc.PctChangeMaterial},
		{"cost_of_avoidance", doc.CostOfAvoidance},
		{"pct_change_avoidance", doc.PctChangeAvoidance},
		{"savings", doc.Savings},
		{"pct_change_savings", doc.PctChangeSavings},
	}
	for _, r := range required {
		if r.val == nil {
			return set, fmt.Errorf("%s: missing key %q", filepath.Base(path), r.key)
		}
	}

	set = model.KPISet{
		CostOfMaterial:  model.KPI{Name: "Cost of Material", Current: *doc.CostOfMaterial, PctChange: *doc.PctChangeMaterial},
		CostOfAvoidance: model.KPI{Name: "Cost of Avoidance", Current: *doc.CostOfAvoidance, PctChange: *doc.PctChangeAvoidance},
		Savings:         model.KPI{Name: "Savings", Current: *doc.Savings, PctChange: *doc.PctChangeSavings},
	}
	return set, nil
}

// LoadCategoryTotals reads a Department,Savings table. Departments must be
// unique.
func LoadCategoryTotals(path string) ([]model.CategoryTotal, error) {
	rows, idx, err := readTable(path, []string{"Department", "Savings"})
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	totals := make([]model.CategoryTotal, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		dept := row[idx["Department"]]
		if _, dup := seen[dept]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate department %q", name, i+2, dept)
		}
		seen[dept] = struct{}{}

		v, err := parseCell(name, i, "Savings", row[idx["Savings"]])
		if err != nil {
			return nil, err
		}
		totals = append(totals, model.CategoryTotal{Category: dept, Value: v})
	}
	return totals, nil
}

// LoadMonthly reads the long-format MonthYear,Department,Savings table.
// Each (month, department) pair may appear at most once; months keep their
// file order of first appearance.
func LoadMonthly(path string) ([]model.TimeSeriesPoint, error) {
	rows, idx, err := readTable(path, []string{"MonthYear", "Department", "Savings"})
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	points := make([]model.TimeSeriesPoint, 0, len(rows))
	seen := make(map[[2]string]struct{}, len(rows))
	for i, row := range rows {
		month := row[idx["MonthYear"]]
		dept := row[idx["Department"]]
		key := [2]string{month, dept}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate entry for %s / %s", name, i+2, month, dept)
		}
		seen[key] = struct{}{}

		v, err := parseCell(name, i, "Savings", row[idx["Savings"]])
		if err != nil {
			return nil, err
		}
		points = append(points, model.TimeSeriesPoint{Period: month, Category: dept, Value: v})
	}
	return points, nil
}

// LoadSeries reads a two-column period/value table such as the ROI actuals
// or the forecast. Periods must be unique and stay in file order.
func LoadSeries(path, periodCol, valueCol string) ([]model.SeriesPoint, error) {
	rows, idx, err := readTable(path, []string{periodCol, valueCol})
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	series := make([]model.SeriesPoint, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		period := row[idx[periodCol]]
		if _, dup := seen[period]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate period %q", name, i+2, period)
		}
		seen[period] = struct{}{}

		v, err := parseCell(name, i, valueCol, row[idx[valueCol]])
		if err != nil {
			return nil, err
		}
		series = append(series, model.SeriesPoint{Period: period, Value: v})
	}
	return series, nil
}

// readTable reads a CSV file and resolves the required column indices from
// its header row. At least one data row is required.
func readTable(path string, want []string) ([][]string, map[string]int, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", name)
	}

	header := records[0]
	idx := make(map[string]int, len(want))
	for _, col := range want {
		found := -1
		for i, h := range header {
			if h == col {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, nil, fmt.Errorf("%s: missing column %q", name, col)
		}
		idx[col] = found
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: no data rows", name)
	}
	return rows, idx, nil
}

// parseCell parses a numeric cell, reporting the 1-based file row (header
// included) on failure.
func parseCell(file string, rowIdx int, col, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: parsing %s %q: %w", file, rowIdx+2, col, raw, err)
	}
	return v, nil
}
