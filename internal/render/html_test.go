package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/procdash/procdash/internal/gen"
)

func TestBuildDashboard(t *testing.T) {
	spec := DefaultSpec()
	out, err := BuildDashboard(spec, gen.Dataset())
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	page := string(out)

	if n := strings.Count(page, spec.PlotlyCDN); n != 1 {
		t.Errorf("CDN URL appears %d times, want 1", n)
	}
	if !strings.Contains(page, "<title>Procurement Dashboard</title>") {
		t.Error("page missing default title")
	}

	for _, id := range []string{
		"kpi-donut-1", "kpi-donut-2", "kpi-donut-3",
		"monthly-stacked", "totals-pie", "roi-forecast",
	} {
		if !strings.Contains(page, `id="`+id+`"`) {
			t.Errorf("page missing chart div %q", id)
		}
	}

	// One draw call per chart: three KPIs plus three big charts.
	if n := strings.Count(page, `draw("`); n != 6 {
		t.Errorf("got %d draw calls, want 6", n)
	}

	// Every canonical KPI declined, so every badge points down.
	if n := strings.Count(page, "&#x25BC;"); n != 3 {
		t.Errorf("got %d down arrows, want 3", n)
	}
	if strings.Count(page, "class='negative'") != 3 || strings.Count(page, "class='positive'") != 0 {
		t.Error("badge classes do not match the all-negative canonical KPIs")
	}
	if !strings.Contains(page, "-54.90%") {
		t.Error("page missing formatted percent change")
	}

	if !strings.Contains(page, `"displayModeBar":true`) {
		t.Error("page missing shared plot config")
	}
}

func TestBuildDashboardBadgeDirection(t *testing.T) {
	ds := gen.Dataset()
	ds.KPIs.Savings.PctChange = 12.5

	out, err := BuildDashboard(DefaultSpec(), ds)
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	page := string(out)

	if !strings.Contains(page, "&#x25B2;") {
		t.Error("rising KPI should render an up arrow")
	}
	if !strings.Contains(page, "class='positive'>+12.50%") {
		t.Error("rising KPI should render a positive badge")
	}
}

func TestBuildDashboardCustomTitle(t *testing.T) {
	spec := DefaultSpec()
	spec.Title = "Plant 7 Savings"

	out, err := BuildDashboard(spec, gen.Dataset())
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	if !strings.Contains(string(out), `<h1 class="dash-title">Plant 7 Savings</h1>`) {
		t.Error("custom title not rendered in page header")
	}
}

func TestWriteDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dashboard.html")

	if err := WriteDashboard(DefaultSpec(), gen.Dataset(), path); err != nil {
		t.Fatalf("WriteDashboard failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dashboard: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("dashboard file does not start with a doctype")
	}
}
