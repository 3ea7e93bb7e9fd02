package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
	"github.com/procdash/procdash/internal/tui/components"
	"github.com/procdash/procdash/internal/tui/theme"
)

func (a App) renderTrendTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: monthly totals over the whole window
	if len(a.periodTotals) > 0 {
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Savings (%d months)", len(a.periodTotals)),
			components.BarChart(
				pipeline.Values(a.periodTotals),
				chartMonthLabels(a.periods),
				t.Blue,
				components.CardInnerWidth(cw),
				10,
			),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 2: ROI actuals next to the forecast
	halves := components.LayoutRow(cw, 2)

	var roiCard, forecastCard string
	if len(a.ds.ROI) > 0 {
		roiCard = components.ContentCard(
			"Monthly ROI",
			components.BarChart(
				pipeline.Values(a.ds.ROI),
				chartMonthLabels(seriesPeriods(a.ds.ROI)),
				t.Blue,
				components.CardInnerWidth(halves[0]),
				8,
			),
			halves[0],
		)
	}
	if len(a.ds.Forecast) > 0 {
		forecastCard = components.ContentCard(
			"ROI Forecast",
			components.BarChart(
				pipeline.Values(a.ds.Forecast),
				chartMonthLabels(seriesPeriods(a.ds.Forecast)),
				t.Yellow,
				components.CardInnerWidth(halves[1]),
				8,
			),
			halves[1],
		)
	}
	b.WriteString(components.CardRow([]string{roiCard, forecastCard}))
	b.WriteString("\n")

	// Row 3: the continuous actual+forecast line the dashboard draws
	joined := pipeline.JoinForecast(a.ds.ROI, a.ds.Forecast)
	if len(a.ds.ROI) > 0 && len(joined) > 1 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

		combined := append(pipeline.Values(a.ds.ROI), pipeline.Values(joined[1:])...)
		first := a.ds.ROI[0].Period
		last := joined[len(joined)-1].Period

		var body strings.Builder
		body.WriteString(components.Sparkline(combined, t.Blue))
		body.WriteString("\n")
		body.WriteString(labelStyle.Render(first))
		span := len(combined) - lipgloss.Width(first) - lipgloss.Width(last)
		if span > 0 {
			body.WriteString(dimStyle.Render(strings.Repeat(" ", span)))
		}
		body.WriteString(labelStyle.Render(last))
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("last %d months are forecast", len(joined)-1)))

		b.WriteString(components.ContentCard("ROI + Forecast", body.String(), cw))
	}

	return b.String()
}

// seriesPeriods lifts the period labels out of a series.
func seriesPeriods(points []model.SeriesPoint) []string {
	periods := make([]string, len(points))
	for i, p := range points {
		periods[i] = p.Period
	}
	return periods
}
