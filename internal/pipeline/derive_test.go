package pipeline

import (
	"math"
	"testing"

	"github.com/procdash/procdash/internal/model"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBackCalcPrevious(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		pct     float64
		want    float64
	}{
		{"increase", 150, 50, 100},
		{"decrease", 90, -10, 100},
		{"flat", 1234.5, 0, 1234.5},
		{"full drop keeps current", 500, -100, 500},
		{"negative current", -200, 100, -100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BackCalcPrevious(tc.current, tc.pct)
			if !closeTo(got, tc.want) {
				t.Errorf("BackCalcPrevious(%v, %v) = %v, want %v", tc.current, tc.pct, got, tc.want)
			}
		})
	}
}

func TestBackCalcPreviousRoundTrips(t *testing.T) {
	// Applying the stated change to the derived previous value must land
	// back on the current value.
	cases := []struct{ current, pct float64 }{
		{10556, -54.90},
		{6279, -54.42},
		{16976, -55.50},
		{100, 25},
	}
	for _, tc := range cases {
		prev := BackCalcPrevious(tc.current, tc.pct)
		back := prev * (1 + tc.pct/100)
		if math.Abs(back-tc.current) > 1e-6 {
			t.Errorf("previous %v changed by %v%% = %v, want %v", prev, tc.pct, back, tc.current)
		}
	}
}

func TestDonutRemainder(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"difference", 10556, 23405.764966740576, 23405.764966740576 - 10556},
		{"no change uses five percent", 100, 100, 5},
		{"tiny value floors at one", 1, 1, 1},
		{"zero floors at one", 0, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DonutRemainder(tc.current, tc.previous)
			if !closeTo(got, tc.want) {
				t.Errorf("DonutRemainder(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
			}
		})
	}
}

func TestDeriveKPI(t *testing.T) {
	ks := DeriveKPI(model.KPI{Name: "Savings", Current: 16976, PctChange: -55.50})

	wantPrev := 16976 / (1 - 0.555)
	if !closeTo(ks.Previous, wantPrev) {
		t.Errorf("Previous = %v, want %v", ks.Previous, wantPrev)
	}
	if !closeTo(ks.Delta, 16976-wantPrev) {
		t.Errorf("Delta = %v, want %v", ks.Delta, 16976-wantPrev)
	}
	if ks.Delta >= 0 {
		t.Error("Delta should be negative for a reduction")
	}
	if !closeTo(ks.Donut, wantPrev-16976) {
		t.Errorf("Donut = %v, want %v", ks.Donut, wantPrev-16976)
	}
}

func TestDeriveKPIsKeepsOrder(t *testing.T) {
	set := model.KPISet{
		CostOfMaterial:  model.KPI{Name: "Cost of Material", Current: 1, PctChange: 0},
		CostOfAvoidance: model.KPI{Name: "Cost of Avoidance", Current: 2, PctChange: 0},
		Savings:         model.KPI{Name: "Savings", Current: 3, PctChange: 0},
	}

	stats := DeriveKPIs(set)
	if len(stats) != 3 {
		t.Fatalf("got %d stats, want 3", len(stats))
	}
	want := []string{"Cost of Material", "Cost of Avoidance", "Savings"}
	for i, w := range want {
		if stats[i].KPI.Name != w {
			t.Errorf("stats[%d] = %q, want %q", i, stats[i].KPI.Name, w)
		}
	}
}

func TestStackedAxis(t *testing.T) {
	cases := []struct {
		name     string
		maxTotal float64
		wantMax  float64
	}{
		{"small data hits floor", 5000, 60000},
		{"mid data hits floor", 42000, 60000},
		{"at floor", 60000, 60000},
		{"just above floor", 61000, 70000},
		{"large", 97465, 100000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			axis := StackedAxis(tc.maxTotal)
			if axis.Min != 0 {
				t.Errorf("Min = %v, want 0", axis.Min)
			}
			if axis.Max != tc.wantMax {
				t.Errorf("Max = %v, want %v", axis.Max, tc.wantMax)
			}
			wantTicks := int(tc.wantMax/10000) + 1
			if len(axis.Ticks) != wantTicks {
				t.Fatalf("got %d ticks, want %d", len(axis.Ticks), wantTicks)
			}
			if axis.Ticks[0] != 0 || axis.Ticks[len(axis.Ticks)-1] != tc.wantMax {
				t.Errorf("ticks span [%v, %v], want [0, %v]", axis.Ticks[0], axis.Ticks[len(axis.Ticks)-1], tc.wantMax)
			}
		})
	}
}

func TestROIAxis(t *testing.T) {
	cases := []struct {
		name    string
		dataMax float64
		wantMax float64
	}{
		{"under default ceiling", 35000, 40000},
		{"at default ceiling", 40000, 40000},
		{"above ceiling rounds up", 52000, 55000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			axis := ROIAxis(tc.dataMax)
			if axis.Min != 10000 {
				t.Errorf("Min = %v, want 10000", axis.Min)
			}
			if axis.Max != tc.wantMax {
				t.Errorf("Max = %v, want %v", axis.Max, tc.wantMax)
			}
			if axis.Ticks[0] != 10000 || axis.Ticks[len(axis.Ticks)-1] != tc.wantMax {
				t.Errorf("ticks span [%v, %v], want [10000, %v]", axis.Ticks[0], axis.Ticks[len(axis.Ticks)-1], tc.wantMax)
			}
			for i := 1; i < len(axis.Ticks); i++ {
				if axis.Ticks[i]-axis.Ticks[i-1] != 5000 {
					t.Fatalf("tick step %v at %d, want 5000", axis.Ticks[i]-axis.Ticks[i-1], i)
				}
			}
		})
	}
}

func TestJoinForecast(t *testing.T) {
	actual := []model.SeriesPoint{
		{Period: "Jan 2023", Value: 100},
		{Period: "Feb 2023", Value: 200},
		{Period: "Mar 2023", Value: 300},
	}
	forecast := []model.SeriesPoint{
		{Period: "Apr 2023", Value: 250},
		{Period: "May 2023", Value: 150},
	}

	joined := JoinForecast(actual, forecast)
	if len(joined) != len(forecast)+1 {
		t.Fatalf("got %d points, want %d", len(joined), len(forecast)+1)
	}
	if joined[0] != actual[len(actual)-1] {
		t.Errorf("joined[0] = %+v, want last actual %+v", joined[0], actual[len(actual)-1])
	}
	for i, f := range forecast {
		if joined[i+1] != f {
			t.Errorf("joined[%d] = %+v, want %+v", i+1, joined[i+1], f)
		}
	}
}

func TestJoinForecastNoActuals(t *testing.T) {
	forecast := []model.SeriesPoint{{Period: "Apr 2023", Value: 250}}

	joined := JoinForecast(nil, forecast)
	if len(joined) != 1 || joined[0] != forecast[0] {
		t.Fatalf("JoinForecast(nil, forecast) = %+v, want copy of forecast", joined)
	}

	// The copy must be independent of the input slice
	joined[0].Value = 999
	if forecast[0].Value != 250 {
		t.Error("mutating the joined series changed the input forecast")
	}
}
