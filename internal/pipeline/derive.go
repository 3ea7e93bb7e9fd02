// Package pipeline holds the pure derivation layer between loaded tables and
// the rendering surfaces: back-calculation, donut slice synthesis, axis
// ranges, and the forecast continuity join. Everything here is stateless and
// deterministic.
package pipeline

import (
	"math"

	"github.com/procdash/procdash/internal/model"
)

// BackCalcPrevious derives the prior-period value from a current value and
// its stated percent change, e.g. current 150 with pct +50 gives 100.
// A pct of -100 would divide by zero; the current value is returned
// unchanged in that case. Negative current passes through arithmetically.
func BackCalcPrevious(current, pct float64) float64 {
	denom := 1 + pct/100
	if denom == 0 {
		return current
	}
	return current / denom
}

// DonutRemainder returns the second slice value for a KPI donut ring.
//
// This is a presentation device, not a metric: the ring needs two strictly
// positive slices to avoid rendering as a full circle, so the absolute
// difference from the previous period is used as filler, and a zero
// difference is replaced by max(5% of current, 1). The result must never be
// read as a real complementary quantity.
func DonutRemainder(current, previous float64) float64 {
	remainder := math.Abs(previous - current)
	if remainder == 0 {
		remainder = math.Max(current*0.05, 1)
	}
	return remainder
}

// KPIStats holds the derived quantities one KPI card needs.
type KPIStats struct {
	KPI      model.KPI
	Previous float64
	Delta    float64 // current minus previous, signed
	Donut    float64 // cosmetic second slice, see DonutRemainder
}

// DeriveKPI back-calculates the previous value and the donut pair for one
// KPI.
func DeriveKPI(k model.KPI) KPIStats {
	prev := BackCalcPrevious(k.Current, k.PctChange)
	return KPIStats{
		KPI:      k,
		Previous: prev,
		Delta:    k.Current - prev,
		Donut:    DonutRemainder(k.Current, prev),
	}
}

// DeriveKPIs derives card stats for the whole set, in dashboard order.
func DeriveKPIs(set model.KPISet) []KPIStats {
	kpis := set.All()
	out := make([]KPIStats, len(kpis))
	for i, k := range kpis {
		out[i] = DeriveKPI(k)
	}
	return out
}

// Axis describes a derived y-axis: an inclusive range plus tick positions.
type Axis struct {
	Min   float64
	Max   float64
	Ticks []float64
}

// StackedAxis computes the y-axis for the monthly stacked bar from the
// largest per-period total: ceiling to the next 10000 with a floor of
// 60000, ticks every 10000 from zero. The floor keeps small datasets from
// rendering with a cramped, misleading scale.
func StackedAxis(maxTotal float64) Axis {
	ymax := math.Ceil(maxTotal/10000) * 10000
	if ymax < 60000 {
		ymax = 60000
	}
	return Axis{Min: 0, Max: ymax, Ticks: tickRange(0, ymax, 10000)}
}

// ROIAxis computes the y-axis for the ROI chart from the maximum across
// actuals and forecast: 40000 unless the data exceeds it, then ceiling to
// the next 5000. The minimum is fixed at 10000; ticks every 5000.
func ROIAxis(dataMax float64) Axis {
	ymax := 40000.0
	if dataMax > 40000 {
		ymax = math.Ceil(dataMax/5000) * 5000
	}
	return Axis{Min: 10000, Max: ymax, Ticks: tickRange(10000, ymax, 5000)}
}

func tickRange(from, to, step float64) []float64 {
	ticks := make([]float64, 0, int((to-from)/step)+1)
	for v := from; v <= to; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// JoinForecast builds the rendered forecast series: the last actual point
// followed by every forecast point, so the two line segments meet with no
// gap at the join period. With no actuals the forecast is returned as is.
func JoinForecast(actual, forecast []model.SeriesPoint) []model.SeriesPoint {
	if len(actual) == 0 {
		out := make([]model.SeriesPoint, len(forecast))
		copy(out, forecast)
		return out
	}
	out := make([]model.SeriesPoint, 0, len(forecast)+1)
	out = append(out, actual[len(actual)-1])
	out = append(out, forecast...)
	return out
}
