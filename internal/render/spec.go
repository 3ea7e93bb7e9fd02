package render

import "github.com/procdash/procdash/internal/config"

// Spec carries every fixed presentation table the dashboard uses: category
// orderings, the month sequence, color maps, chart geometry, and the chart
// library location. Render functions take a Spec instead of reaching for
// package-level state, so alternative orderings and palettes stay testable.
type Spec struct {
	Title     string
	PlotlyCDN string

	// Months is the reporting window in chronological order; the stacked
	// bar orders its x-axis by it.
	Months []string

	// DeptStackOrder is the trace order of the stacked bar, bottom first.
	DeptStackOrder []string
	DeptColors     map[string]string

	// Donut styling: first color fills the value slice, second the
	// synthesized remainder.
	DonutColors [2]string
	DonutHole   float64
	PiePull     float64

	KPIWidth  int
	KPIHeight int
	BarWidth  int
	BarHeight int
	PieWidth  int
	PieHeight int
	ROIWidth  int
	ROIHeight int

	ActualLineColor   string
	ActualFillColor   string
	ForecastLineColor string
	ForecastFillColor string
}

// DefaultSpec returns the canonical dashboard presentation.
func DefaultSpec() Spec {
	return Spec{
		Title:     "Procurement Dashboard",
		PlotlyCDN: "https://cdn.plot.ly/plotly-2.35.2.min.js",

		Months: []string{
			"Mar 2022", "Apr 2022", "May 2022", "Jun 2022", "Jul 2022",
			"Aug 2022", "Sep 2022", "Oct 2022", "Nov 2022", "Dec 2022",
			"Jan 2023", "Feb 2023", "Mar 2023",
		},

		DeptStackOrder: []string{
			"Batteries", "Forklift", "Machine", "Other", "Sensors", "Transmissions",
		},
		DeptColors: map[string]string{
			"Batteries":     "rgba(66, 133, 244, 0.76)",
			"Forklift":      "rgba(52, 168,  83, 0.80)",
			"Machine":       "rgba(242,142,  43, 0.85)",
			"Other":         "rgba(148,103, 189, 0.80)",
			"Sensors":       "rgba(255,199,  44, 0.80)",
			"Transmissions": "rgba(233,  74, 126, 0.80)",
		},

		DonutColors: [2]string{"rgba(114,186,255,0.6)", "rgba(225,225,225,0.6)"},
		DonutHole:   0.7,
		PiePull:     0.05,

		KPIWidth:  520,
		KPIHeight: 250,
		BarWidth:  1000,
		BarHeight: 450,
		PieWidth:  520,
		PieHeight: 450,
		ROIWidth:  1600,
		ROIHeight: 350,

		ActualLineColor:   "#636EFA",
		ActualFillColor:   "rgba(99,110,250,0.25)",
		ForecastLineColor: "blue",
		ForecastFillColor: "rgba(99,110,250,0.10)",
	}
}

// SpecFromConfig overlays user configuration onto the default presentation.
func SpecFromConfig(cfg config.Config) Spec {
	spec := DefaultSpec()
	if cfg.Dashboard.Title != "" {
		spec.Title = cfg.Dashboard.Title
	}
	if cfg.Dashboard.PlotlyCDN != "" {
		spec.PlotlyCDN = cfg.Dashboard.PlotlyCDN
	}
	if cfg.Charts.DonutHole > 0 {
		spec.DonutHole = cfg.Charts.DonutHole
	}
	if cfg.Charts.PiePull > 0 {
		spec.PiePull = cfg.Charts.PiePull
	}
	return spec
}
