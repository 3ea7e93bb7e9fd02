package render

import (
	"strings"
	"testing"

	"github.com/procdash/procdash/internal/config"
	"github.com/procdash/procdash/internal/gen"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
)

func TestKPIDonut(t *testing.T) {
	spec := DefaultSpec()
	ks := pipeline.DeriveKPI(model.KPI{Name: "Savings", Current: 16976, PctChange: -55.50})

	fig := KPIDonut(spec, ks, "kpi-donut-3")

	if fig.DivID != "kpi-donut-3" {
		t.Errorf("DivID = %q, want kpi-donut-3", fig.DivID)
	}
	if len(fig.Data) != 1 {
		t.Fatalf("got %d traces, want 1", len(fig.Data))
	}

	trace := fig.Data[0]
	if trace.Type != "pie" {
		t.Errorf("trace type = %q, want pie", trace.Type)
	}
	if len(trace.Values) != 2 || trace.Values[0] != 16976 || trace.Values[1] != ks.Donut {
		t.Errorf("values = %v, want [16976 %v]", trace.Values, ks.Donut)
	}
	if trace.Hole != 0.7 {
		t.Errorf("hole = %v, want 0.7", trace.Hole)
	}
	if trace.Sort == nil || *trace.Sort {
		t.Error("slice sorting must be disabled so the value slice stays first")
	}

	if len(fig.Layout.Annotations) != 1 {
		t.Fatalf("got %d annotations, want 1", len(fig.Layout.Annotations))
	}
	if got := fig.Layout.Annotations[0].Text; got != "<b>$16,976</b>" {
		t.Errorf("center annotation = %q, want truncated dollars", got)
	}

	if len(trace.CustomData) != 2 {
		t.Fatalf("got %d hover entries, want 2", len(trace.CustomData))
	}
	if !strings.Contains(trace.CustomData[1], "-$") || !strings.Contains(trace.CustomData[1], "reduction") {
		t.Errorf("delta hover = %q, want signed dollars and direction verb", trace.CustomData[1])
	}
}

func TestMonthlyStacked(t *testing.T) {
	spec := DefaultSpec()
	ds := gen.Dataset()

	fig := MonthlyStacked(spec, ds.Monthly, "monthly-stacked")

	if len(fig.Data) != len(spec.DeptStackOrder) {
		t.Fatalf("got %d traces, want %d", len(fig.Data), len(spec.DeptStackOrder))
	}
	for i, dept := range spec.DeptStackOrder {
		if fig.Data[i].Name != dept {
			t.Errorf("trace %d = %q, want %q", i, fig.Data[i].Name, dept)
		}
		if len(fig.Data[i].X) != len(spec.Months) {
			t.Errorf("trace %q has %d points, want %d", dept, len(fig.Data[i].X), len(spec.Months))
		}
	}

	if fig.Layout.BarMode != "stack" {
		t.Errorf("barmode = %q, want stack", fig.Layout.BarMode)
	}

	// Canonical peak month is Jul 2022 at 56,414 so the axis lands on the
	// 60,000 floor.
	y := fig.Layout.YAxis
	if y == nil || len(y.Range) != 2 || y.Range[0] != 0 || y.Range[1] != 60000 {
		t.Fatalf("y range = %+v, want [0 60000]", y)
	}
	if len(y.TickVals) != 7 {
		t.Errorf("got %d y ticks, want 7", len(y.TickVals))
	}

	x := fig.Layout.XAxis
	if x == nil || len(x.TickText) == 0 || x.TickText[0] != "Mar" {
		t.Fatalf("x tick text = %+v, want short month names", x)
	}
}

func TestTotalsPie(t *testing.T) {
	spec := DefaultSpec()
	ds := gen.Dataset()

	fig := TotalsPie(spec, ds.DepartmentTotals, "totals-pie")

	if len(fig.Data) != 1 {
		t.Fatalf("got %d traces, want 1", len(fig.Data))
	}
	trace := fig.Data[0]

	wantLabels := []string{"Transmissions", "Sensors", "Other", "Machine", "Forklift", "Batteries"}
	if len(trace.Labels) != len(wantLabels) {
		t.Fatalf("got %d labels, want %d", len(trace.Labels), len(wantLabels))
	}
	for i, w := range wantLabels {
		if trace.Labels[i] != w {
			t.Errorf("label %d = %q, want %q (table order, not sorted)", i, trace.Labels[i], w)
		}
	}

	if trace.Pull != spec.PiePull {
		t.Errorf("pull = %v, want %v", trace.Pull, spec.PiePull)
	}
	if trace.Sort == nil || *trace.Sort {
		t.Error("slice sorting must be disabled to keep table order")
	}
	if trace.TextInfo != "percent+label" {
		t.Errorf("textinfo = %q, want percent+label", trace.TextInfo)
	}
}

func TestROIForecast(t *testing.T) {
	spec := DefaultSpec()
	ds := gen.Dataset()

	fig := ROIForecast(spec, ds.ROI, ds.Forecast, "roi-forecast")

	if len(fig.Data) != 2 {
		t.Fatalf("got %d traces, want 2", len(fig.Data))
	}
	actual, forecast := fig.Data[0], fig.Data[1]

	if len(actual.X) != len(ds.ROI) {
		t.Errorf("actual trace has %d points, want %d", len(actual.X), len(ds.ROI))
	}
	if actual.Fill != "tozeroy" {
		t.Errorf("actual fill = %q, want tozeroy", actual.Fill)
	}

	// Forecast joins at the last actual month for line continuity.
	if len(forecast.X) != len(ds.Forecast)+1 {
		t.Fatalf("forecast trace has %d points, want %d", len(forecast.X), len(ds.Forecast)+1)
	}
	if forecast.X[0] != "Mar 2023" || forecast.Y[0] != 12000 {
		t.Errorf("forecast joins at %q/%v, want Mar 2023/12000", forecast.X[0], forecast.Y[0])
	}
	if forecast.Line == nil || forecast.Line.Dash != "dot" {
		t.Error("forecast line must be dotted")
	}

	// Canonical ROI peaks at 37,000, inside the default 40,000 ceiling.
	y := fig.Layout.YAxis
	if y == nil || len(y.Range) != 2 || y.Range[0] != 10000 || y.Range[1] != 40000 {
		t.Fatalf("y range = %+v, want [10000 40000]", y)
	}

	if x := fig.Layout.XAxis; x == nil || len(x.TickVals) != len(ds.ROI)+len(ds.Forecast) {
		t.Errorf("x axis covers %d months, want %d", len(x.TickVals), len(ds.ROI)+len(ds.Forecast))
	}
}

func TestSpecFromConfigOverlays(t *testing.T) {
	var cfg config.Config
	cfg.Dashboard.Title = "Plant 7 Savings"
	cfg.Dashboard.PlotlyCDN = "https://example.com/plotly.js"
	cfg.Charts.DonutHole = 0.5

	spec := SpecFromConfig(cfg)
	if spec.Title != "Plant 7 Savings" {
		t.Errorf("Title = %q, want override", spec.Title)
	}
	if spec.PlotlyCDN != "https://example.com/plotly.js" {
		t.Errorf("PlotlyCDN = %q, want override", spec.PlotlyCDN)
	}
	if spec.DonutHole != 0.5 {
		t.Errorf("DonutHole = %v, want 0.5", spec.DonutHole)
	}
	// Unset fields keep their defaults
	if spec.PiePull != DefaultSpec().PiePull {
		t.Errorf("PiePull = %v, want default %v", spec.PiePull, DefaultSpec().PiePull)
	}
}
