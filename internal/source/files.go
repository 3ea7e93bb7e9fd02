// Package source loads the procurement data directory: one JSON file of
// scalar KPIs and four CSV tables. Any missing or malformed file is an
// error; the renderer never partially renders.
package source

// File names inside the data directory. The generator writes these and the
// loader reads them back; together they are the on-disk contract.
const (
	FileKPIs             = "procurement_kpis.json"
	FileDepartmentTotals = "savings_by_department.csv"
	FileMonthlySavings   = "monthly_savings_by_department.csv"
	FileROI              = "procurement_roi.csv"
	FileForecast         = "procurement_forecast.csv"
)

// FileNames lists all data files in generation order.
func FileNames() []string {
	return []string{
		FileKPIs,
		FileDepartmentTotals,
		FileMonthlySavings,
		FileROI,
		FileForecast,
	}
}
