// Package render turns derived dashboard values into Plotly figures and the
// final HTML page. Figures are plain data: typed trace and layout structs
// that marshal into the JSON shapes Plotly.newPlot consumes.
package render

// Trace is one Plotly data object. Only the attributes the dashboard uses
// are modeled; zero values stay out of the payload.
type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	// Cartesian traces
	X    []string  `json:"x,omitempty"`
	Y    []float64 `json:"y,omitempty"`
	Mode string    `json:"mode,omitempty"`

	// Pie traces
	Labels                []string  `json:"labels,omitempty"`
	Values                []float64 `json:"values,omitempty"`
	Hole                  float64   `json:"hole,omitempty"`
	Sort                  *bool     `json:"sort,omitempty"`
	Direction             string    `json:"direction,omitempty"`
	Pull                  float64   `json:"pull,omitempty"`
	TextInfo              string    `json:"textinfo,omitempty"`
	TextPosition          string    `json:"textposition,omitempty"`
	InsideTextOrientation string    `json:"insidetextorientation,omitempty"`
	Domain                *Domain   `json:"domain,omitempty"`

	Marker        *Marker  `json:"marker,omitempty"`
	Line          *Line    `json:"line,omitempty"`
	Fill          string   `json:"fill,omitempty"`
	FillColor     string   `json:"fillcolor,omitempty"`
	ShowLegend    *bool    `json:"showlegend,omitempty"`
	CustomData    []string `json:"customdata,omitempty"`
	HoverTemplate string   `json:"hovertemplate,omitempty"`
}

// Marker styles trace points or slices.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   float64  `json:"size,omitempty"`
	Symbol string   `json:"symbol,omitempty"`
	Line   *Line    `json:"line,omitempty"`
}

// Line styles a trace line or a marker outline.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Shape string  `json:"shape,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Domain positions a pie within its plot area.
type Domain struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Layout is the Plotly layout object.
type Layout struct {
	AutoSize     *bool        `json:"autosize,omitempty"`
	Width        int          `json:"width,omitempty"`
	Height       int          `json:"height,omitempty"`
	BarMode      string       `json:"barmode,omitempty"`
	ShowLegend   *bool        `json:"showlegend,omitempty"`
	Title        *Title       `json:"title,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	Legend       *Legend      `json:"legend,omitempty"`
	XAxis        *LayoutAxis  `json:"xaxis,omitempty"`
	YAxis        *LayoutAxis  `json:"yaxis,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
	UniformText  *UniformText `json:"uniformtext,omitempty"`
}

// Title is a figure or axis title.
type Title struct {
	Text    string  `json:"text,omitempty"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	Y       float64 `json:"y,omitempty"`
	YAnchor string  `json:"yanchor,omitempty"`
	Font    *Font   `json:"font,omitempty"`
}

// Font styles text elements.
type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Margin sets the plot margins in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend styles the figure legend.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Font        *Font   `json:"font,omitempty"`
	BorderColor string  `json:"bordercolor,omitempty"`
	BorderWidth float64 `json:"borderwidth,omitempty"`
	BGColor     string  `json:"bgcolor,omitempty"`
}

// LayoutAxis configures one cartesian axis. TickVals is []any because the
// x-axis ticks are month labels while the y-axis ticks are numbers.
type LayoutAxis struct {
	Title          *Title    `json:"title,omitempty"`
	TickMode       string    `json:"tickmode,omitempty"`
	TickVals       []any     `json:"tickvals,omitempty"`
	TickText       []string  `json:"ticktext,omitempty"`
	TickPrefix     string    `json:"tickprefix,omitempty"`
	TickFormat     string    `json:"tickformat,omitempty"`
	Ticks          string    `json:"ticks,omitempty"`
	TickLen        float64   `json:"ticklen,omitempty"`
	Range          []float64 `json:"range,omitempty"`
	ShowGrid       *bool     `json:"showgrid,omitempty"`
	ShowLine       *bool     `json:"showline,omitempty"`
	ShowTickLabels *bool     `json:"showticklabels,omitempty"`
	LineColor      string    `json:"linecolor,omitempty"`
	AutoMargin     *bool     `json:"automargin,omitempty"`
}

// Annotation places free text on a figure, used for the donut center value.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ShowArrow *bool   `json:"showarrow,omitempty"`
	Font      *Font   `json:"font,omitempty"`
}

// UniformText constrains in-chart text sizing.
type UniformText struct {
	MinSize int    `json:"minsize,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

// Config is the Plotly display configuration shared by every chart on the
// page. All fields are always serialized.
type Config struct {
	Responsive     bool `json:"responsive"`
	DisplayModeBar bool `json:"displayModeBar"`
	DisplayLogo    bool `json:"displaylogo"`
}

// DefaultPlotConfig returns the display settings used by every dashboard
// chart.
func DefaultPlotConfig() Config {
	return Config{
		Responsive:     false,
		DisplayModeBar: true,
		DisplayLogo:    false,
	}
}

// Figure pairs traces with a layout under the div that mounts it.
type Figure struct {
	DivID  string  `json:"-"`
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

func ptr[T any](v T) *T {
	return &v
}
