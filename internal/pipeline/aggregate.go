package pipeline

import "github.com/procdash/procdash/internal/model"

// Periods returns the distinct periods of the long-format points in
// first-appearance order.
func Periods(points []model.TimeSeriesPoint) []string {
	seen := make(map[string]struct{})
	var periods []string
	for _, p := range points {
		if _, ok := seen[p.Period]; ok {
			continue
		}
		seen[p.Period] = struct{}{}
		periods = append(periods, p.Period)
	}
	return periods
}

// PeriodTotals sums the long-format points per period, returned in the
// order given by periods. Periods with no points total zero.
func PeriodTotals(points []model.TimeSeriesPoint, periods []string) []model.SeriesPoint {
	sums := make(map[string]float64, len(periods))
	for _, p := range points {
		sums[p.Period] += p.Value
	}

	totals := make([]model.SeriesPoint, len(periods))
	for i, period := range periods {
		totals[i] = model.SeriesPoint{Period: period, Value: sums[period]}
	}
	return totals
}

// CategorySeries extracts one category's points ordered by periods.
// Periods the category has no value for are skipped, not zero-filled.
func CategorySeries(points []model.TimeSeriesPoint, category string, periods []string) []model.SeriesPoint {
	values := make(map[string]float64)
	for _, p := range points {
		if p.Category == category {
			values[p.Period] = p.Value
		}
	}

	series := make([]model.SeriesPoint, 0, len(periods))
	for _, period := range periods {
		if v, ok := values[period]; ok {
			series = append(series, model.SeriesPoint{Period: period, Value: v})
		}
	}
	return series
}

// Categories returns the distinct categories of the points in
// first-appearance order.
func Categories(points []model.TimeSeriesPoint) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range points {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// Values strips the periods off a series, keeping order.
func Values(points []model.SeriesPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}

// SumTotals returns the grand total across category totals.
func SumTotals(totals []model.CategoryTotal) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.Value
	}
	return sum
}

// MaxSeries returns the largest value found across the given series, or 0
// when every series is empty.
func MaxSeries(series ...[]model.SeriesPoint) float64 {
	var max float64
	first := true
	for _, s := range series {
		for _, p := range s {
			if first || p.Value > max {
				max = p.Value
				first = false
			}
		}
	}
	return max
}

// MaxTotal returns the largest per-period total, or 0 with no points.
func MaxTotal(totals []model.SeriesPoint) float64 {
	var max float64
	for i, t := range totals {
		if i == 0 || t.Value > max {
			max = t.Value
		}
	}
	return max
}
