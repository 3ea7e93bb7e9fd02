package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
)

// Chart mount points in the page.
const (
	divKPIPrefix = "kpi-donut-"
	divMonthly   = "monthly-stacked"
	divPie       = "totals-pie"
	divROI       = "roi-forecast"
)

// kpiCard is the view model for one KPI card: the serialized figure plus
// the delta badge under it.
type kpiCard struct {
	DivID  string
	Figure template.JS
	Pct    string // signed percent change, e.g. "-54.90%"
	Down   bool
}

// chartCard is the view model for a plain chart card.
type chartCard struct {
	DivID  string
	Figure template.JS
}

type pageData struct {
	Title   string
	CDNURL  template.URL
	Config  template.JS
	KPIs    []kpiCard
	Monthly chartCard
	Pie     chartCard
	ROI     chartCard
}

// BuildDashboard derives every figure from the dataset and renders the
// complete HTML page. The chart library is referenced once, from the CDN
// URL in spec; each chart mounts into its own div from serialized figure
// JSON.
func BuildDashboard(spec Spec, ds model.Dataset) ([]byte, error) {
	stats := pipeline.DeriveKPIs(ds.KPIs)

	kpis := make([]kpiCard, len(stats))
	for i, ks := range stats {
		fig := KPIDonut(spec, ks, fmt.Sprintf("%s%d", divKPIPrefix, i+1))
		payload, err := marshalFigure(fig)
		if err != nil {
			return nil, err
		}
		kpis[i] = kpiCard{
			DivID:  fig.DivID,
			Figure: payload,
			Pct:    cli.FormatPctChange(ks.KPI.PctChange),
			Down:   ks.KPI.PctChange < 0,
		}
	}

	monthly, err := marshalCard(MonthlyStacked(spec, ds.Monthly, divMonthly))
	if err != nil {
		return nil, err
	}
	pie, err := marshalCard(TotalsPie(spec, ds.DepartmentTotals, divPie))
	if err != nil {
		return nil, err
	}
	roi, err := marshalCard(ROIForecast(spec, ds.ROI, ds.Forecast, divROI))
	if err != nil {
		return nil, err
	}

	cfg, err := json.Marshal(DefaultPlotConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding plot config: %w", err)
	}

	data := pageData{
		Title:   spec.Title,
		CDNURL:  template.URL(spec.PlotlyCDN),
		Config:  template.JS(cfg),
		KPIs:    kpis,
		Monthly: monthly,
		Pie:     pie,
		ROI:     roi,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDashboard renders the page and writes it to path, creating the
// output directory if needed.
func WriteDashboard(spec Spec, ds model.Dataset, path string) error {
	html, err := BuildDashboard(spec, ds)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("writing dashboard: %w", err)
	}
	return nil
}

func marshalFigure(fig Figure) (template.JS, error) {
	b, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encoding figure %s: %w", fig.DivID, err)
	}
	return template.JS(b), nil
}

func marshalCard(fig Figure) (chartCard, error) {
	payload, err := marshalFigure(fig)
	if err != nil {
		return chartCard{}, err
	}
	return chartCard{DivID: fig.DivID, Figure: payload}, nil
}

var pageTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>{{.Title}}</title>
<style>
body {
    margin:0;
    padding:0;
    background:#eef1f7;
    font-family:"Open Sans", verdana, arial, sans-serif;
}
.dashboard-wrapper {
    width:100%;
    max-width:1600px;
    margin:auto;
    padding:16px;
}
h1.dash-title {
    font-size:32px;
    font-weight:bold;
    margin:0 0 24px 0;
    color:#111;
    text-align:left;
}
.card {
    background:#fff;
    background:linear-gradient(#ffffff, #f7f9fc);
    border-radius:18px;
    box-shadow:0 2px 12px rgba(50,50,93,0.07), 0 1.5px 4px rgba(0,0,0,0.07);
    padding:18px;
    margin:2px;
    transition:box-shadow 0.2s;
}
.card:hover {
    box-shadow:0 4px 24px rgba(50,50,93,0.13), 0 3px 8px rgba(0,0,0,0.13);
}
.nested-card {
    background:#f4f4f4;
    border-radius:8px;
    padding:6px 10px;
    position:relative;
    font-size: 14px;
    text-align:center;
    color:#666;
    box-shadow:0 1px 3px rgba(0,0,0,0.08);
    margin-top:4px;
}
.positive {
    color:#27ae60;
    font-weight:bold;
}
.negative {
    color:#c0392b;
    font-weight:bold;
}
.dashboard-grid {
    display:grid;
    grid-template-columns:repeat(3, 1fr);
    grid-template-rows:0.20fr 0.50fr 0.40fr;
    gap:12px;
    width:100%;
}
.card .js-plotly-plot,
.card .plotly-graph-div {
    max-width:100% !important;
    margin:0 auto;
}
@media (max-width:900px){
    .dashboard-grid {
        grid-template-columns:1fr;
        grid-template-rows:auto;
    }
    .span-all { grid-column:1 !important; }
}
</style>
<script src="{{.CDNURL}}"></script>
</head>
<body>
<div class="dashboard-wrapper">
  <h1 class="dash-title">{{.Title}}</h1>
  <div class="dashboard-grid">
{{- range $i, $k := .KPIs}}
    <div class="card" style="grid-row:1;grid-column:{{inc $i}};">
        <div id="{{$k.DivID}}" class="plotly-graph-div"></div>
        <div class="nested-card"><span class='{{if $k.Down}}negative{{else}}positive{{end}}'>{{$k.Pct}} {{if $k.Down}}&#x25BC;{{else}}&#x25B2;{{end}}</span> vs last month</div>
    </div>
{{- end}}
    <div class="card span-all" style="grid-row:2;grid-column:1/3;">
        <div id="{{.Monthly.DivID}}" class="plotly-graph-div"></div>
    </div>
    <div class="card" style="grid-row:2;grid-column:3;">
        <div id="{{.Pie.DivID}}" class="plotly-graph-div"></div>
    </div>
    <div class="card span-all" style="grid-row:3;grid-column:1/4;">
        <div id="{{.ROI.DivID}}" class="plotly-graph-div"></div>
    </div>
  </div>
</div>
<script>
var plotConfig = {{.Config}};
function draw(divID, fig) {
    Plotly.newPlot(divID, fig.data, fig.layout, plotConfig);
}
{{- range .KPIs}}
draw("{{.DivID}}", {{.Figure}});
{{- end}}
draw("{{.Monthly.DivID}}", {{.Monthly.Figure}});
draw("{{.Pie.DivID}}", {{.Pie.Figure}});
draw("{{.ROI.DivID}}", {{.ROI.Figure}});
</script>
</body>
</html>
`))
