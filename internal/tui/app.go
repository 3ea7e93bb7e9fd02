// Package tui provides the interactive Bubble Tea preview of the dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/procdash/procdash/internal/cli"
	"github.com/procdash/procdash/internal/model"
	"github.com/procdash/procdash/internal/pipeline"
	"github.com/procdash/procdash/internal/source"
	"github.com/procdash/procdash/internal/tui/components"
	"github.com/procdash/procdash/internal/tui/theme"
)

// DataLoadedMsg is sent when the data files have been read.
type DataLoadedMsg struct {
	Dataset  model.Dataset
	Err      error
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	ds       model.Dataset
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed views of the dataset
	kpis         []pipeline.KPIStats
	periods      []string
	periodTotals []model.SeriesPoint

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	spinner spinner.Model

	dataDir string
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the preview model rooted at dataDir.
func NewApp(dataDir string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		dataDir: dataDir,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.dataDir), a.spinner.Tick)
}

func (a *App) recompute() {
	a.kpis = pipeline.DeriveKPIs(a.ds.KPIs)
	a.periods = pipeline.Periods(a.ds.Monthly)
	a.periodTotals = pipeline.PeriodTotals(a.ds.Monthly, a.periods)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "r" {
			a.loaded = false
			a.loadErr = nil
			return a, tea.Batch(loadDataCmd(a.dataDir), a.spinner.Tick)
		}

		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			for _, r := range key {
				if idx := components.TabIdxByKey(r); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		if msg.Err == nil {
			a.ds = msg.Dataset
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  procdash needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ procdash"))
	b.WriteString(subtitleStyle.Render(" · Procurement Savings"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading data files..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load data"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(truncStr(a.loadErr.Error(), 70)))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("Run `procdash generate` to create the data files."))
	b.WriteString("\n\n")
	b.WriteString(keyStyle.Render("[r]"))
	b.WriteString(textStyle.Render(" retry  "))
	b.WriteString(keyStyle.Render("[q]"))
	b.WriteString(textStyle.Render(" quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o d t", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"r", "Reload data files"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar plus the latest-month pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ")
	if len(a.periods) > 0 {
		pill += pillAccentStyle.Render(a.periods[len(a.periods)-1])
		pill += pillStyle.Render(" │ ")
	}
	pill += pillAccentStyle.Render(fmt.Sprintf("%d departments", len(a.ds.DepartmentTotals)))

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" + pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.dataDir)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderDepartmentsTab(cw)
	case 2:
		content = a.renderTrendTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically and fill any remaining rows
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd reads the data files off the Bubble Tea event loop.
func loadDataCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ds, err := source.LoadAll(dataDir)
		return DataLoadedMsg{
			Dataset:  ds,
			Err:      err,
			LoadTime: time.Since(start),
		}
	}
}

// chartMonthLabels shortens "Mar 2022" style periods to bare month names
// for use as x-axis labels.
func chartMonthLabels(periods []string) []string {
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = cli.FormatMonthShort(p)
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
