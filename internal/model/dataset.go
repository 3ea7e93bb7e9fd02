// Package model defines domain types for procurement metrics and series.
package model

// KPI is a single named metric: its current value plus the stated percent
// change versus the prior period. PctChange is signed ("current is PctChange%
// different from previous"); values below -100 make the back-calculation
// denominator non-positive and are not expected in real data.
type KPI struct {
	Name      string
	Current   float64
	PctChange float64
}

// KPISet holds the three dashboard KPIs in display order.
type KPISet struct {
	CostOfMaterial  KPI
	CostOfAvoidance KPI
	Savings         KPI
}

// All returns the KPIs in dashboard order (material, avoidance, savings).
func (s KPISet) All() []KPI {
	return []KPI{s.CostOfMaterial, s.CostOfAvoidance, s.Savings}
}

// CategoryTotal is one category's aggregate value within a reporting
// dimension. Categories are unique within a set.
type CategoryTotal struct {
	Category string
	Value    float64
}

// TimeSeriesPoint is a single observation in a period-ordered series.
// Category is empty for single-series data (e.g., ROI actuals); for the
// monthly breakdown each (Period, Category) pair appears at most once.
type TimeSeriesPoint struct {
	Period   string // "Mon YYYY" label, chronologically ordered by convention
	Category string
	Value    float64
}

// SeriesPoint is a point in a single-valued series (no category).
type SeriesPoint struct {
	Period string
	Value  float64
}

// Dataset aggregates the five tables the renderer consumes. Constructed once
// by the loader; never mutated afterwards.
type Dataset struct {
	KPIs             KPISet
	DepartmentTotals []CategoryTotal
	Monthly          []TimeSeriesPoint
	ROI              []SeriesPoint
	Forecast         []SeriesPoint
}
