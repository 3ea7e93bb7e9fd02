// Package gen holds the hand-authored procurement tables and writes them to
// the data directory. Values are fixed; regeneration always produces the
// same files.
package gen

import "github.com/procdash/procdash/internal/model"

// ActualMonths covers the reporting window, in chronological order.
var ActualMonths = []string{
	"Mar 2022", "Apr 2022", "May 2022", "Jun 2022", "Jul 2022",
	"Aug 2022", "Sep 2022", "Oct 2022", "Nov 2022", "Dec 2022",
	"Jan 2023", "Feb 2023", "Mar 2023",
}

// ForecastMonths continue the actuals window.
var ForecastMonths = []string{
	"Apr 2023", "May 2023", "Jun 2023", "Jul 2023", "Aug 2023", "Sep 2023",
}

// departmentWriteOrder is the row order used within each month of the
// monthly CSV and for the department totals file.
var departmentWriteOrder = []string{
	"Transmissions", "Sensors", "Other", "Machine", "Forklift", "Batteries",
}

var departmentTotals = map[string]float64{
	"Transmissions": 97465,
	"Sensors":       84101,
	"Other":         90986,
	"Machine":       88876,
	"Forklift":      85327,
	"Batteries":     102533,
}

// monthlySavings maps month -> department -> savings.
var monthlySavings = map[string]map[string]float64{
	"Mar 2022": {"Transmissions": 1902, "Sensors": 2975, "Other": 3468, "Machine": 6205, "Forklift": 4406, "Batteries": 1405},
	"Apr 2022": {"Transmissions": 6261, "Sensors": 10495, "Other": 4046, "Machine": 6284, "Forklift": 6446, "Batteries": 5231},
	"May 2022": {"Transmissions": 13257, "Sensors": 2827, "Other": 10726, "Machine": 6753, "Forklift": 7032, "Batteries": 10240},
	"Jun 2022": {"Transmissions": 4383, "Sensors": 5990, "Other": 8505, "Machine": 8041, "Forklift": 8872, "Batteries": 10572},
	"Jul 2022": {"Transmissions": 11684, "Sensors": 11022, "Other": 7536, "Machine": 8935, "Forklift": 5728, "Batteries": 11509},
	"Aug 2022": {"Transmissions": 7680, "Sensors": 8429, "Other": 6317, "Machine": 6491, "Forklift": 4994, "Batteries": 7167},
	"Sep 2022": {"Transmissions": 9415, "Sensors": 5890, "Other": 8829, "Machine": 9450, "Forklift": 7755, "Batteries": 6492},
	"Oct 2022": {"Transmissions": 5858, "Sensors": 12772, "Other": 7769, "Machine": 6415, "Forklift": 7677, "Batteries": 13641},
	"Nov 2022": {"Transmissions": 11993, "Sensors": 5290, "Other": 9131, "Machine": 6481, "Forklift": 4274, "Batteries": 9542},
	"Dec 2022": {"Transmissions": 2829, "Sensors": 5479, "Other": 5896, "Machine": 6085, "Forklift": 9988, "Batteries": 10750},
	"Jan 2023": {"Transmissions": 11413, "Sensors": 3471, "Other": 8423, "Machine": 9068, "Forklift": 8813, "Batteries": 7026},
	"Feb 2023": {"Transmissions": 8750, "Sensors": 7140, "Other": 3964, "Machine": 4200, "Forklift": 7050, "Batteries": 7495},
	"Mar 2023": {"Transmissions": 2040, "Sensors": 2321, "Other": 6376, "Machine": 4468, "Forklift": 2292, "Batteries": 1463},
}

var roiValues = []float64{
	15100, 25000, 35000, 28000, 36000,
	25300, 29000, 37000, 29000, 28500,
	28700, 24800, 12000,
}

var forecastValues = []float64{21000, 22000, 18800, 23000, 16000, 13500}

func kpis() model.KPISet {
	return model.KPISet{
		CostOfMaterial:  model.KPI{Name: "Cost of Material", Current: 10556, PctChange: -54.90},
		CostOfAvoidance: model.KPI{Name: "Cost of Avoidance", Current: 6279, PctChange: -54.42},
		Savings:         model.KPI{Name: "Savings", Current: 16976, PctChange: -55.50},
	}
}

// Dataset assembles the canonical in-memory dataset, identical to what the
// loader reads back after WriteAll.
func Dataset() model.Dataset {
	totals := make([]model.CategoryTotal, 0, len(departmentWriteOrder))
	for _, dept := range departmentWriteOrder {
		totals = append(totals, model.CategoryTotal{Category: dept, Value: departmentTotals[dept]})
	}

	monthly := make([]model.TimeSeriesPoint, 0, len(ActualMonths)*len(departmentWriteOrder))
	for _, month := range ActualMonths {
		for _, dept := range departmentWriteOrder {
			monthly = append(monthly, model.TimeSeriesPoint{
				Period:   month,
				Category: dept,
				Value:    monthlySavings[month][dept],
			})
		}
	}

	roi := make([]model.SeriesPoint, len(ActualMonths))
	for i, month := range ActualMonths {
		roi[i] = model.SeriesPoint{Period: month, Value: roiValues[i]}
	}

	forecast := make([]model.SeriesPoint, len(ForecastMonths))
	for i, month := range ForecastMonths {
		forecast[i] = model.SeriesPoint{Period: month, Value: forecastValues[i]}
	}

	return model.Dataset{
		KPIs:             kpis(),
		DepartmentTotals: totals,
		Monthly:          monthly,
		ROI:              roi,
		Forecast:         forecast,
	}
}
