// Package export writes secondary artifacts from the dataset: PNG charts
// and an XLSX workbook. The HTML dashboard stays the primary surface; the
// exports reuse the same derivations so every surface agrees on ranges and
// joins.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
)

var (
	actualColor   = drawing.Color{R: 0x63, G: 0x6E, B: 0xFA, A: 0xFF}
	actualFill    = drawing.Color{R: 0x63, G: 0x6E, B: 0xFA, A: 0x40}
	forecastColor = drawing.Color{B: 0xFF, A: 0xFF}
	forecastFill  = drawing.Color{R: 0x63, G: 0x6E, B: 0xFA, A: 0x1A}
	barColor      = drawing.Color{R: 0x42, G: 0x85, B: 0xF4, A: 0xC2}
)

// WriteROIPNG renders the ROI actuals plus the continuity-joined forecast
// to a PNG line chart. Months map onto consecutive x positions; the y-axis
// range and ticks come from the shared axis derivation.
func WriteROIPNG(ds model.Dataset, path string) error {
	joined := pipeline.JoinForecast(ds.ROI, ds.Forecast)
	axis := pipeline.ROIAxis(pipeline.MaxSeries(ds.ROI, ds.Forecast))

	actualX := make([]float64, len(ds.ROI))
	actualY := make([]float64, len(ds.ROI))
	for i, p := range ds.ROI {
		actualX[i] = float64(i)
		actualY[i] = p.Value
	}

	joinIdx := len(ds.ROI) - 1
	forecastX := make([]float64, len(joined))
	forecastY := make([]float64, len(joined))
	for i, p := range joined {
		forecastX[i] = float64(joinIdx + i)
		forecastY[i] = p.Value
	}

	months := make([]string, 0, len(ds.ROI)+len(ds.Forecast))
	for _, p := range ds.ROI {
		months = append(months, p.Period)
	}
	for _, p := range ds.Forecast {
		months = append(months, p.Period)
	}

	xTicks := make([]chart.Tick, len(months))
	for i, m := range months {
		xTicks[i] = chart.Tick{Value: float64(i), Label: cli.FormatMonthShort(m)}
	}

	yTicks := make([]chart.Tick, len(axis.Ticks))
	for i, t := range axis.Ticks {
		yTicks[i] = chart.Tick{Value: t, Label: cli.FormatDollars(t)}
	}

	ch := chart.Chart{
		Title:      "Procurement ROI & Forecast",
		Width:      1200,
		Height:     400,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 40}},
		XAxis: chart.XAxis{
			Ticks: xTicks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(months) - 1)},
		},
		YAxis: chart.YAxis{
			Name:  "ROI ($)",
			Range: &chart.ContinuousRange{Min: axis.Min, Max: axis.Max},
			Ticks: yTicks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Procurement ROI",
				XValues: actualX,
				YValues: actualY,
				Style: chart.Style{
					StrokeColor: actualColor,
					StrokeWidth: 3,
					FillColor:   actualFill,
				},
			},
			chart.ContinuousSeries{
				Name:    "Forecast",
				XValues: forecastX,
				YValues: forecastY,
				Style: chart.Style{
					StrokeColor:     forecastColor,
					StrokeWidth:     3,
					StrokeDashArray: []float64{4, 4},
					FillColor:       forecastFill,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return renderPNG(ch.Render, path)
}

// WriteDepartmentsPNG renders the department totals as a bar chart.
func WriteDepartmentsPNG(ds model.Dataset, path string) error {
	bars := make([]chart.Value, len(ds.DepartmentTotals))
	var max float64
	for i, t := range ds.DepartmentTotals {
		bars[i] = chart.Value{
			Value: t.Value,
			Label: t.Category,
			Style: chart.Style{FillColor: barColor, StrokeWidth: 0},
		}
		if t.Value > max {
			max = t.Value
		}
	}

	bc := chart.BarChart{
		Title:      "Total Savings by Department",
		Width:      900,
		Height:     400,
		BarWidth:   80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.1},
		},
		Bars: bars,
	}

	return renderPNG(bc.Render, path)
}

func renderPNG(render func(chart.RendererProvider, io.Writer) error, path string) error {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
