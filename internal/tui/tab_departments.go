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

// departmentLabelWidth fits the longest department name ("Transmissions").
const departmentLabelWidth = 13

func (a App) renderDepartmentsTab(cw int) string {
	t := theme.Active
	totals := a.ds.DepartmentTotals
	if len(totals) == 0 {
		return "\n  No department data."
	}

	var b strings.Builder

	// Row 1: totals column chart
	values := make([]float64, len(totals))
	labels := make([]string, len(totals))
	for i, d := range totals {
		values[i] = d.Value
		labels[i] = truncStr(d.Category, 5)
	}
	b.WriteString(components.ContentCard(
		"Total Savings by Department",
		components.BarChart(values, labels, t.Blue, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 2: share list with exact values
	total := pipeline.SumTotals(totals)
	innerW := components.CardInnerWidth(cw)

	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	valueW := 10
	barW := innerW - departmentLabelWidth - valueW - 10
	if barW < 4 {
		barW = 4
	}

	var list strings.Builder
	for _, d := range totals {
		share := 0.0
		if total > 0 {
			share = d.Value / total
		}
		list.WriteString(components.ShareBar(d.Category, share, departmentLabelWidth, barW))
		list.WriteString(valueStyle.Render(fmt.Sprintf("  %*s", valueW, cli.FormatDollars(d.Value))))
		list.WriteString("\n")
	}
	sepW := departmentLabelWidth + barW + valueW + 10
	list.WriteString(dimStyle.Render(strings.Repeat("─", sepW)))
	list.WriteString("\n")
	list.WriteString(totalStyle.Render(fmt.Sprintf("%-*s", departmentLabelWidth, "TOTAL")))
	list.WriteString(totalStyle.Render(fmt.Sprintf("%*s", barW+valueW+10, cli.FormatDollars(total))))

	b.WriteString(components.ContentCard("Share of Total", list.String(), cw))
	b.WriteString("\n")

	// Row 3: latest month per department
	if len(a.periods) > 0 {
		latest := a.periods[len(a.periods)-1]

		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
		numStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

		latestVals := make([]float64, 0, len(totals))
		names := make([]string, 0, len(totals))
		maxVal := 0.0
		for _, p := range a.ds.Monthly {
			if p.Period != latest {
				continue
			}
			latestVals = append(latestVals, p.Value)
			names = append(names, p.Category)
			if p.Value > maxVal {
				maxVal = p.Value
			}
		}

		barMax := innerW - departmentLabelWidth - valueW - 3
		if barMax < 1 {
			barMax = 1
		}

		var month strings.Builder
		for i, v := range latestVals {
			barLen := 0
			if maxVal > 0 {
				barLen = int(v / maxVal * float64(barMax))
			}
			fmt.Fprintf(&month, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", departmentLabelWidth, names[i])),
				numStyle.Render(fmt.Sprintf("%*s", valueW, cli.FormatDollars(v))),
				barStyle.Render(strings.Repeat("█", barLen)))
		}

		b.WriteString(components.ContentCard(fmt.Sprintf("Savings in %s", latest), month.String(), cw))
	}

	return b.String()
}
