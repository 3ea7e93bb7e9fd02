package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/pipeline"
	"github.com/procdash/procdash/internal/tui/components"
	"github.com/procdash/procdash/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: KPI cards
	cards := make([]components.Card, 0, len(a.kpis))
	for _, ks := range a.kpis {
		color := t.Green
		if ks.KPI.PctChange < 0 {
			color = t.Red
		}
		cards = append(cards, components.Card{
			Label: ks.KPI.Name,
			Value: cli.FormatDollars(ks.KPI.Current),
			Delta: fmt.Sprintf("%s vs last month", cli.FormatPctChange(ks.KPI.PctChange)),
			Color: color,
		})
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly savings chart
	if len(a.periodTotals) > 0 {
		b.WriteString(components.ContentCard(
			"Monthly Savings (all departments)",
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

	// Row 3: Department share + ROI snapshot
	halves := components.LayoutRow(cw, 2)

	var shareBody strings.Builder
	total := pipeline.SumTotals(a.ds.DepartmentTotals)
	if total > 0 {
		innerW := components.CardInnerWidth(halves[0])
		barW := innerW - departmentLabelWidth - 8
		if barW < 4 {
			barW = 4
		}
		for _, d := range a.ds.DepartmentTotals {
			shareBody.WriteString(components.ShareBar(d.Category, d.Value/total, departmentLabelWidth, barW))
			shareBody.WriteString("\n")
		}
	}

	var roiBody strings.Builder
	if len(a.ds.ROI) > 0 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

		roiBody.WriteString(components.Sparkline(pipeline.Values(a.ds.ROI), t.Blue))
		roiBody.WriteString("\n")

		latest := a.ds.ROI[len(a.ds.ROI)-1]
		roiBody.WriteString(labelStyle.Render("Latest    "))
		roiBody.WriteString(valueStyle.Render(cli.FormatDollars(latest.Value)))
		roiBody.WriteString(labelStyle.Render("  " + latest.Period))
		roiBody.WriteString("\n")

		if len(a.ds.Forecast) > 0 {
			next := a.ds.Forecast[0]
			roiBody.WriteString(labelStyle.Render("Forecast  "))
			roiBody.WriteString(valueStyle.Render(cli.FormatDollars(next.Value)))
			roiBody.WriteString(labelStyle.Render("  " + next.Period))
		}
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Department Share", shareBody.String(), halves[0]),
		components.ContentCard("Savings ROI", roiBody.String(), halves[1]),
	}))

	return b.String()
}
