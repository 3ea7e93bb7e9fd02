package render

import (
	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
)

// KPIDonut builds the ring figure for one derived KPI: the current value
// plus the cosmetic remainder slice, with the truncated dollar value
// annotated in the center. The hover text carries the signed delta and its
// direction verb.
func KPIDonut(spec Spec, ks pipeline.KPIStats, divID string) Figure {
	hover := []string{
		cli.FormatDollars(ks.KPI.Current) + " current",
		cli.FormatDollarsSigned(ks.Delta) + "<br>" + cli.DeltaVerb(ks.Delta) + " vs<br>last month",
	}

	trace := Trace{
		Type:      "pie",
		Labels:    []string{"Current", "Delta"},
		Values:    []float64{ks.KPI.Current, ks.Donut},
		Hole:      spec.DonutHole,
		Sort:      ptr(false),
		Direction: "clockwise",
		Marker: &Marker{
			Colors: []string{spec.DonutColors[0], spec.DonutColors[1]},
			Line:   &Line{Color: "darkgrey", Width: 1},
		},
		ShowLegend:    ptr(false),
		TextInfo:      "none",
		CustomData:    hover,
		HoverTemplate: "%{customdata}<extra></extra>",
		Domain:        &Domain{X: []float64{0, 1}, Y: []float64{0, 1}},
	}

	layout := Layout{
		AutoSize: ptr(false),
		Width:    spec.KPIWidth,
		Height:   spec.KPIHeight,
		Title: &Title{
			Text:    "<b>" + ks.KPI.Name + "</b>",
			X:       0.5,
			XAnchor: "center",
			Y:       0.98,
			YAnchor: "top",
			Font:    &Font{Size: 18, Color: "black"},
		},
		Margin:       &Margin{L: 10, R: 10, T: 50, B: 30},
		PaperBGColor: "white",
		PlotBGColor:  "white",
		UniformText:  &UniformText{MinSize: 12, Mode: "hide"},
		Annotations: []Annotation{{
			Text:      "<b>" + cli.FormatDollars(ks.KPI.Current) + "</b>",
			X:         0.5,
			Y:         0.5,
			ShowArrow: ptr(false),
			Font:      &Font{Size: 20, Color: "black"},
		}},
	}

	return Figure{DivID: divID, Data: []Trace{trace}, Layout: layout}
}

// MonthlyStacked builds the stacked bar of monthly savings per department.
// Bars stack in spec.DeptStackOrder; the x-axis shows the month sequence
// with short labels; the y-axis range comes from the per-month totals.
func MonthlyStacked(spec Spec, monthly []model.TimeSeriesPoint, divID string) Figure {
	traces := make([]Trace, 0, len(spec.DeptStackOrder))
	for _, dept := range spec.DeptStackOrder {
		series := pipeline.CategorySeries(monthly, dept, spec.Months)
		x := make([]string, len(series))
		y := make([]float64, len(series))
		for i, p := range series {
			x[i] = p.Period
			y[i] = p.Value
		}
		traces = append(traces, Trace{
			Type:   "bar",
			X:      x,
			Y:      y,
			Name:   dept,
			Marker: &Marker{Color: spec.DeptColors[dept]},
		})
	}

	totals := pipeline.PeriodTotals(monthly, spec.Months)
	axis := pipeline.StackedAxis(pipeline.MaxTotal(totals))

	layout := Layout{
		AutoSize:   ptr(false),
		Width:      spec.BarWidth,
		Height:     spec.BarHeight,
		BarMode:    "stack",
		ShowLegend: ptr(true),
		Legend: &Legend{
			Orientation: "h",
			Y:           -0.22,
			X:           0.5,
			XAnchor:     "center",
			Font:        &Font{Size: 14},
			BorderColor: "lightgrey",
			BorderWidth: 1,
			BGColor:     "white",
		},
		Margin: &Margin{L: 10, R: 10, T: 80, B: 60},
		Title: &Title{
			Text:    "<b>Monthly Savings by Department</b>",
			X:       0.01,
			XAnchor: "left",
			Font:    &Font{Size: 18},
		},
		PaperBGColor: "white",
		PlotBGColor:  "white",
		XAxis:        monthAxis(spec.Months),
		YAxis:        dollarAxis(axis, "Savings ($)", false),
	}

	return Figure{DivID: divID, Data: traces, Layout: layout}
}

// TotalsPie builds the department share pie from the totals table, keeping
// the table's row order.
func TotalsPie(spec Spec, totals []model.CategoryTotal, divID string) Figure {
	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	colors := make([]string, len(totals))
	for i, t := range totals {
		labels[i] = t.Category
		values[i] = t.Value
		colors[i] = spec.DeptColors[t.Category]
	}

	trace := Trace{
		Type:                  "pie",
		Labels:                labels,
		Values:                values,
		Marker:                &Marker{Colors: colors},
		Sort:                  ptr(false),
		Direction:             "clockwise",
		TextInfo:              "percent+label",
		TextPosition:          "outside",
		InsideTextOrientation: "radial",
		ShowLegend:            ptr(false),
		Pull:                  spec.PiePull,
		HoverTemplate:         "%{label}: $%{value:,}<br>%{percent}<extra></extra>",
	}

	layout := Layout{
		AutoSize: ptr(false),
		Width:    spec.PieWidth,
		Height:   spec.PieHeight,
		Margin:   &Margin{L: 10, R: 10, T: 80, B: 40},
		Title: &Title{
			Text:    "<b>Total Savings by Department</b>",
			X:       0.5,
			XAnchor: "center",
			Font:    &Font{Size: 18},
		},
		PaperBGColor: "white",
		PlotBGColor:  "white",
	}

	return Figure{DivID: divID, Data: []Trace{trace}, Layout: layout}
}

// ROIForecast builds the actuals line with its continuity-joined forecast
// overlay. Both traces fill to zero; the y-axis range covers actuals and
// forecast together.
func ROIForecast(spec Spec, actual, forecast []model.SeriesPoint, divID string) Figure {
	ax := make([]string, len(actual))
	ay := make([]float64, len(actual))
	for i, p := range actual {
		ax[i] = p.Period
		ay[i] = p.Value
	}

	joined := pipeline.JoinForecast(actual, forecast)
	fx := make([]string, len(joined))
	fy := make([]float64, len(joined))
	for i, p := range joined {
		fx[i] = p.Period
		fy[i] = p.Value
	}

	allMonths := make([]string, 0, len(actual)+len(forecast))
	for _, p := range actual {
		allMonths = append(allMonths, p.Period)
	}
	for _, p := range forecast {
		allMonths = append(allMonths, p.Period)
	}

	axis := pipeline.ROIAxis(pipeline.MaxSeries(actual, forecast))

	actualTrace := Trace{
		Type:          "scatter",
		X:             ax,
		Y:             ay,
		Mode:          "lines+markers",
		Name:          "Procurement ROI",
		Line:          &Line{Shape: "spline", Width: 3, Color: spec.ActualLineColor},
		Marker:        &Marker{Size: 6, Color: spec.ActualLineColor},
		HoverTemplate: "%{x}: $%{y:,}<extra></extra>",
		Fill:          "tozeroy",
		FillColor:     spec.ActualFillColor,
	}

	forecastTrace := Trace{
		Type:          "scatter",
		X:             fx,
		Y:             fy,
		Mode:          "lines+markers",
		Name:          "Forecast",
		Line:          &Line{Shape: "spline", Width: 3, Color: spec.ForecastLineColor, Dash: "dot"},
		Marker:        &Marker{Symbol: "circle-open", Size: 8, Color: spec.ForecastLineColor},
		HoverTemplate: "%{x}: $%{y:,}<extra></extra>",
		Fill:          "tozeroy",
		FillColor:     spec.ForecastFillColor,
	}

	layout := Layout{
		AutoSize: ptr(false),
		Width:    spec.ROIWidth,
		Height:   spec.ROIHeight,
		Margin:   &Margin{L: 80, R: 10, T: 80, B: 60},
		Title: &Title{
			Text:    "<b>Procurement ROI & Forecast</b>",
			X:       0.01,
			XAnchor: "left",
			Font:    &Font{Size: 18},
		},
		Legend: &Legend{
			Orientation: "h",
			Y:           -0.25,
			X:           0.5,
			XAnchor:     "center",
			Font:        &Font{Size: 14},
			BorderColor: "lightgrey",
			BorderWidth: 1,
			BGColor:     "white",
		},
		PaperBGColor: "white",
		PlotBGColor:  "white",
		XAxis:        monthAxis(allMonths),
		YAxis:        dollarAxis(axis, "ROI ($)", true),
	}

	return Figure{DivID: divID, Data: []Trace{actualTrace, forecastTrace}, Layout: layout}
}

// monthAxis labels a categorical month axis with short month names.
func monthAxis(months []string) *LayoutAxis {
	vals := make([]any, len(months))
	short := make([]string, len(months))
	for i, m := range months {
		vals[i] = m
		short[i] = cli.FormatMonthShort(m)
	}
	return &LayoutAxis{
		TickMode:  "array",
		TickVals:  vals,
		TickText:  short,
		ShowGrid:  ptr(false),
		ShowLine:  ptr(true),
		LineColor: "darkgrey",
	}
}

// dollarAxis renders a derived numeric axis with $-prefixed tick labels.
func dollarAxis(a pipeline.Axis, title string, showLine bool) *LayoutAxis {
	vals := make([]any, len(a.Ticks))
	for i, t := range a.Ticks {
		vals[i] = t
	}
	axis := &LayoutAxis{
		Title:          &Title{Text: title},
		Range:          []float64{a.Min, a.Max},
		TickVals:       vals,
		TickPrefix:     "$",
		TickFormat:     ",d",
		Ticks:          "outside",
		TickLen:        5,
		ShowGrid:       ptr(false),
		ShowTickLabels: ptr(true),
		LineColor:      "darkgrey",
		AutoMargin:     ptr(true),
	}
	if showLine {
		axis.ShowLine = ptr(true)
	}
	return axis
}
