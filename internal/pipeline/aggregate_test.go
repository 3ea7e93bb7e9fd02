package pipeline

import (
	"reflect"
	"testing"

	"github.com/procdash/procdash/internal/model"
)

func monthlyFixture() []model.TimeSeriesPoint {
	return []model.TimeSeriesPoint{
		{Period: "Jan 2023", Category: "Sensors", Value: 100},
		{Period: "Jan 2023", Category: "Batteries", Value: 50},
		{Period: "Feb 2023", Category: "Sensors", Value: 200},
		{Period: "Feb 2023", Category: "Batteries", Value: 75},
		{Period: "Mar 2023", Category: "Sensors", Value: 300},
	}
}

func TestPeriodsFirstAppearanceOrder(t *testing.T) {
	got := Periods(monthlyFixture())
	want := []string{"Jan 2023", "Feb 2023", "Mar 2023"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Periods = %v, want %v", got, want)
	}
}

func TestPeriodTotals(t *testing.T) {
	periods := []string{"Jan 2023", "Feb 2023", "Mar 2023", "Apr 2023"}
	got := PeriodTotals(monthlyFixture(), periods)

	want := []model.SeriesPoint{
		{Period: "Jan 2023", Value: 150},
		{Period: "Feb 2023", Value: 275},
		{Period: "Mar 2023", Value: 300},
		{Period: "Apr 2023", Value: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PeriodTotals = %v, want %v", got, want)
	}
}

func TestCategorySeriesSkipsMissingPeriods(t *testing.T) {
	periods := Periods(monthlyFixture())

	got := CategorySeries(monthlyFixture(), "Batteries", periods)
	want := []model.SeriesPoint{
		{Period: "Jan 2023", Value: 50},
		{Period: "Feb 2023", Value: 75},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategorySeries = %v, want %v", got, want)
	}

	if got := CategorySeries(monthlyFixture(), "Forklift", periods); len(got) != 0 {
		t.Errorf("unknown category produced %d points, want 0", len(got))
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	got := Categories(monthlyFixture())
	want := []string{"Sensors", "Batteries"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestValues(t *testing.T) {
	series := []model.SeriesPoint{
		{Period: "Jan 2023", Value: 1.5},
		{Period: "Feb 2023", Value: -2},
	}
	got := Values(series)
	want := []float64{1.5, -2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
	if got := Values(nil); len(got) != 0 {
		t.Errorf("Values(nil) = %v, want empty", got)
	}
}

func TestSumTotals(t *testing.T) {
	totals := []model.CategoryTotal{
		{Category: "Sensors", Value: 84101},
		{Category: "Batteries", Value: 102533},
	}
	if got := SumTotals(totals); got != 186634 {
		t.Errorf("SumTotals = %v, want 186634", got)
	}
	if got := SumTotals(nil); got != 0 {
		t.Errorf("SumTotals(nil) = %v, want 0", got)
	}
}

func TestMaxSeries(t *testing.T) {
	a := []model.SeriesPoint{{Value: 10}, {Value: 30}}
	b := []model.SeriesPoint{{Value: 20}}

	if got := MaxSeries(a, b); got != 30 {
		t.Errorf("MaxSeries = %v, want 30", got)
	}
	if got := MaxSeries(); got != 0 {
		t.Errorf("MaxSeries() = %v, want 0", got)
	}

	// All-negative series must not report the zero default.
	neg := []model.SeriesPoint{{Value: -5}, {Value: -1}}
	if got := MaxSeries(neg); got != -1 {
		t.Errorf("MaxSeries(neg) = %v, want -1", got)
	}
}

func TestMaxTotal(t *testing.T) {
	totals := []model.SeriesPoint{{Value: -3}, {Value: -7}}
	if got := MaxTotal(totals); got != -3 {
		t.Errorf("MaxTotal = %v, want -3", got)
	}
	if got := MaxTotal(nil); got != 0 {
		t.Errorf("MaxTotal(nil) = %v, want 0", got)
	}
}
