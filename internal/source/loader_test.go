package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

const validKPIs = `{
  "cost_of_material": 10556,
  "pct_change_material": -54.9,
  "cost_of_avoidance": 6279,
  "pct_change_avoidance": -54.42,
  "savings": 16976,
  "pct_change_savings": -55.5
}`

// writeDataDir lays out a minimal but complete data directory.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, FileKPIs, validKPIs)
	writeFile(t, dir, FileDepartmentTotals, "Department,Savings\nSensors,84101\nBatteries,102533\n")
	writeFile(t, dir, FileMonthlySavings, "MonthYear,Department,Savings\nFeb 2023,Sensors,7140\nFeb 2023,Batteries,7495\nMar 2023,Sensors,2321\nMar 2023,Batteries,1463\n")
	writeFile(t, dir, FileROI, "Month,Procurement ROI\nFeb 2023,24800\nMar 2023,12000\n")
	writeFile(t, dir, FileForecast, "Month,Forecast\nApr 2023,21000\n")
	return dir
}

func TestLoadAll(t *testing.T) {
	dir := writeDataDir(t)

	ds, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if got := ds.KPIs.Savings.Current; got != 16976 {
		t.Errorf("savings KPI = %v, want 16976", got)
	}
	if got := ds.KPIs.CostOfMaterial.PctChange; got != -54.9 {
		t.Errorf("material pct change = %v, want -54.9", got)
	}
	if len(ds.DepartmentTotals) != 2 || ds.DepartmentTotals[0].Category != "Sensors" {
		t.Errorf("department totals = %+v, want Sensors first", ds.DepartmentTotals)
	}
	if len(ds.Monthly) != 4 {
		t.Errorf("monthly points = %d, want 4", len(ds.Monthly))
	}
	if len(ds.ROI) != 2 || ds.ROI[1].Value != 12000 {
		t.Errorf("ROI = %+v, want 2 points ending 12000", ds.ROI)
	}
	if len(ds.Forecast) != 1 || ds.Forecast[0].Period != "Apr 2023" {
		t.Errorf("forecast = %+v, want single Apr 2023 point", ds.Forecast)
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	dir := writeDataDir(t)
	if err := os.Remove(filepath.Join(dir, FileForecast)); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAll(dir)
	if err == nil {
		t.Fatal("expected error for missing forecast file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not unwrap to fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), FileForecast) {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestLoadKPIs_MissingKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileKPIs, `{"cost_of_material": 10556}`)

	_, err := LoadKPIs(path)
	if err == nil {
		t.Fatal("expected error for incomplete KPI file")
	}
	if !strings.Contains(err.Error(), `missing key "pct_change_material"`) {
		t.Errorf("error = %q, want missing-key message", err)
	}
}

func TestLoadKPIs_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileKPIs, "not json")

	_, err := LoadKPIs(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parsing "+FileKPIs) {
		t.Errorf("error = %q, want parse failure naming the file", err)
	}
}

func TestLoadCategoryTotals_DuplicateDepartment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileDepartmentTotals,
		"Department,Savings\nSensors,84101\nSensors,1\n")

	_, err := LoadCategoryTotals(path)
	if err == nil {
		t.Fatal("expected error for duplicate department")
	}
	if !strings.Contains(err.Error(), `duplicate department "Sensors"`) {
		t.Errorf("error = %q, want duplicate-department message", err)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error = %q, want the 1-based file row", err)
	}
}

func TestLoadCategoryTotals_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileDepartmentTotals, "Dept,Savings\nSensors,84101\n")

	_, err := LoadCategoryTotals(path)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), `missing column "Department"`) {
		t.Errorf("error = %q, want missing-column message", err)
	}
}

func TestLoadMonthly_DuplicatePair(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileMonthlySavings,
		"MonthYear,Department,Savings\nMar 2023,Sensors,2321\nMar 2023,Sensors,99\n")

	_, err := LoadMonthly(path)
	if err == nil {
		t.Fatal("expected error for duplicate month/department pair")
	}
	if !strings.Contains(err.Error(), "duplicate entry for Mar 2023 / Sensors") {
		t.Errorf("error = %q, want duplicate-entry message", err)
	}
}

func TestLoadMonthly_SameMonthDifferentDepartments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileMonthlySavings,
		"MonthYear,Department,Savings\nMar 2023,Sensors,2321\nMar 2023,Batteries,1463\n")

	points, err := LoadMonthly(path)
	if err != nil {
		t.Fatalf("LoadMonthly failed: %v", err)
	}
	if len(points) != 2 {
		t.Errorf("got %d points, want 2", len(points))
	}
}

func TestLoadSeries_BadValue(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI, "Month,Procurement ROI\nFeb 2023,24800\nMar 2023,abc\n")

	_, err := LoadSeries(path, "Month", "Procurement ROI")
	if err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if !strings.Contains(err.Error(), "row 3") || !strings.Contains(err.Error(), `"abc"`) {
		t.Errorf("error = %q, want row number and raw cell", err)
	}
}

func TestLoadSeries_DuplicatePeriod(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI, "Month,Procurement ROI\nMar 2023,12000\nMar 2023,1\n")

	_, err := LoadSeries(path, "Month", "Procurement ROI")
	if err == nil {
		t.Fatal("expected error for duplicate period")
	}
	if !strings.Contains(err.Error(), `duplicate period "Mar 2023"`) {
		t.Errorf("error = %q, want duplicate-period message", err)
	}
}

func TestLoadSeries_KeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileForecast,
		"Month,Forecast\nSep 2023,13500\nApr 2023,21000\nJul 2023,23000\n")

	series, err := LoadSeries(path, "Month", "Forecast")
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	want := []string{"Sep 2023", "Apr 2023", "Jul 2023"}
	for i, w := range want {
		if series[i].Period != w {
			t.Errorf("series[%d].Period = %q, want %q", i, series[i].Period, w)
		}
	}
}

func TestLoadSeries_ExtraColumnsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI,
		"Notes,Month,Procurement ROI\nx,Feb 2023,24800\ny,Mar 2023,12000\n")

	series, err := LoadSeries(path, "Month", "Procurement ROI")
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	if len(series) != 2 || series[0].Value != 24800 {
		t.Errorf("series = %+v, want values from the named columns", series)
	}
}

func TestReadTable_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI, "")

	_, _, err := readTable(path, []string{"Month"})
	if err == nil || !strings.Contains(err.Error(), "empty file") {
		t.Errorf("error = %v, want empty-file message", err)
	}
}

func TestReadTable_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI, "Month,Procurement ROI\n")

	_, _, err := readTable(path, []string{"Month", "Procurement ROI"})
	if err == nil || !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("error = %v, want no-data-rows message", err)
	}
}

func TestReadTable_RaggedRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileROI, "Month,Procurement ROI\nMar 2023\n")

	_, _, err := readTable(path, []string{"Month", "Procurement ROI"})
	if err == nil || !strings.Contains(err.Error(), "parsing "+FileROI) {
		t.Errorf("error = %v, want CSV parse failure", err)
	}
}
