// Package tui provides the interactive Bubble Tea explorer for the
// ScaleOS projection.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/theirongolddev/scaleos/internal/cli"
	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/model"
	"github.com/theirongolddev/scaleos/internal/pipeline"
	"github.com/theirongolddev/scaleos/internal/tui/components"
	"github.com/theirongolddev/scaleos/internal/tui/theme"
	"github.com/theirongolddev/scaleos/internal/workbook"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the explorer.
type Options struct {
	Preset     string
	OutputPath string
	Sheet      string
	Logger     *slog.Logger
}

// WrittenMsg is sent when a workbook write finishes.
type WrittenMsg struct {
	Report workbook.Report
	Err    error
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	preset      string
	assumptions model.Assumptions
	proj        model.Projection

	table table.Model
	keys  keyMap
	help  help.Model

	width     int
	height    int
	status    string
	statusErr bool
}

const (
	minTerminalWidth = 80
	chartHeight      = 6
	tenureStep       = 1
	rateStep         = 0.5
)

// NewApp creates the explorer with the given preset loaded.
func NewApp(opts Options) App {
	if opts.OutputPath == "" {
		opts.OutputPath = config.DefaultOutputPath
	}
	if opts.Sheet == "" {
		opts.Sheet = config.DefaultSheetName
	}

	a := App{
		opts:  opts,
		keys:  newKeyMap(),
		help:  help.New(),
		table: newMonthTable(),
	}
	a.loadPreset(opts.Preset)
	return a
}

func newMonthTable() table.Model {
	t := theme.Active
	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 9},
			{Title: "New", Width: 5},
			{Title: "Active", Width: 7},
			{Title: "Workshops", Width: 9},
			{Title: "Sprints", Width: 7},
			{Title: "Revenue", Width: 11},
			{Title: "Days", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.BorderAccent).
		BorderBottom(true).
		Foreground(t.TextMuted).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)
	tbl.SetStyles(styles)
	return tbl
}

func (a *App) loadPreset(name string) {
	if name == "" {
		name = config.PresetBase
	}
	assumptions, err := config.Preset(name)
	if err != nil {
		a.setError(err)
		name = config.PresetBase
		assumptions = model.DefaultAssumptions()
	}
	a.preset = name
	a.assumptions = assumptions
	a.recompute()
}

// recompute rebuilds the projection. Invalid assumptions are rejected and
// the previous projection stays on screen.
func (a *App) recompute() {
	proj, err := pipeline.Build(a.assumptions)
	if err != nil {
		a.setError(err)
		a.assumptions = a.proj.Assumptions
		return
	}
	a.proj = proj

	rows := make([]table.Row, len(proj.Months))
	for i, m := range proj.Months {
		rows[i] = table.Row{
			m.Label(),
			cli.FormatCount(m.NewCEOs),
			cli.FormatCount(m.ActiveCEOs),
			cli.FormatCount(m.Workshops),
			cli.FormatCount(m.Sprints),
			cli.FormatCurrency(m.TotalRevenue),
			cli.FormatDays(m.TotalDays),
		}
	}
	a.table.SetRows(rows)
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.table.SetHeight(a.tableHeight())
		return a, nil

	case WrittenMsg:
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.setStatus(fmt.Sprintf("Wrote %s (rows %d-%d)", msg.Report.Path, msg.Report.FirstRow, msg.Report.LastRow))
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.table.SetHeight(a.tableHeight())
			return a, nil
		case key.Matches(msg, a.keys.Preset):
			a.loadPreset(config.NextPreset(a.preset))
			a.setStatus("Preset: " + a.preset)
			return a, nil
		case key.Matches(msg, a.keys.Reset):
			a.loadPreset(a.preset)
			a.setStatus("Reset to " + a.preset)
			return a, nil
		case key.Matches(msg, a.keys.TenureUp):
			a.adjust(func(m *model.Assumptions) { m.TenureMonths += tenureStep })
			return a, nil
		case key.Matches(msg, a.keys.TenureDown):
			a.adjust(func(m *model.Assumptions) { m.TenureMonths -= tenureStep })
			return a, nil
		case key.Matches(msg, a.keys.RateUp):
			a.adjust(func(m *model.Assumptions) { m.NewCEOsPerMonth += rateStep })
			return a, nil
		case key.Matches(msg, a.keys.RateDown):
			a.adjust(func(m *model.Assumptions) { m.NewCEOsPerMonth -= rateStep })
			return a, nil
		case key.Matches(msg, a.keys.Write):
			a.setStatus("Writing " + a.opts.OutputPath + "...")
			return a, writeCmd(a.assumptions, a.opts)
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a *App) adjust(change func(*model.Assumptions)) {
	next := a.assumptions
	change(&next)
	if err := next.Validate(); err != nil {
		a.setError(err)
		return
	}
	a.assumptions = next
	a.recompute()
	a.setStatus(fmt.Sprintf("Tenure %s, new CEOs/month %s",
		cli.FormatCount(next.TenureMonths), cli.FormatCount(next.NewCEOsPerMonth)))
}

func writeCmd(a model.Assumptions, opts Options) tea.Cmd {
	return func() tea.Msg {
		report, err := workbook.Generate(a, workbook.Options{
			Path:   opts.OutputPath,
			Sheet:  opts.Sheet,
			Logger: opts.Logger,
		})
		return WrittenMsg{Report: report, Err: err}
	}
}

func (a App) tableHeight() int {
	h := a.height - 24
	if a.help.ShowAll {
		h -= 3
	}
	return max(h, 5)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(theme.Active.Orange).
			Render(fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth))
	}

	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n")
	b.WriteString(a.viewYears())
	b.WriteString("\n")
	b.WriteString(a.viewChart())
	b.WriteString("\n")
	b.WriteString(a.table.View())
	b.WriteString("\n")

	hints := a.help.ShortHelpView(a.keys.ShortHelp())
	if a.help.ShowAll {
		b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
		b.WriteString("\n")
		hints = ""
	}
	b.WriteString(components.RenderStatusBar(a.width, a.status, a.statusErr, hints))

	return b.String()
}

func (a App) viewHeader() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" ScaleOS model")
	preset := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(" " + a.preset)

	in := a.assumptions
	inputs := lipgloss.NewStyle().Foreground(t.Blue).Render(fmt.Sprintf(
		"   tenure %s mo · initial %s · new/mo %s · on-demand %s",
		cli.FormatCount(in.TenureMonths),
		cli.FormatCount(in.InitialCEOs),
		cli.FormatCount(in.NewCEOsPerMonth),
		cli.FormatCurrency(in.OnDemandPrice),
	))
	return title + preset + inputs + "\n"
}

func (a App) viewYears() string {
	t := theme.Active
	metrics := make([]components.Metric, 0, len(a.proj.Years)+1)
	for i, y := range a.proj.Years {
		note := cli.FormatDays(y.TotalDays) + " days"
		if i > 0 {
			note += "  " + cli.FormatGrowth(y.TotalRevenue, a.proj.Years[i-1].TotalRevenue)
		}
		metrics = append(metrics, components.Metric{
			Label: strconv.Itoa(y.Year),
			Value: cli.FormatCurrency(y.TotalRevenue),
			Note:  note,
			Color: t.Green,
		})
	}
	metrics = append(metrics, components.Metric{
		Label: "3-year total",
		Value: cli.FormatCurrency(a.proj.Totals.TotalRevenue),
		Note:  cli.FormatDays(a.proj.Totals.TotalDays) + " days",
		Color: t.AccentBright,
	})
	return components.MetricCardRow(metrics, a.width)
}

func (a App) viewChart() string {
	months := a.proj.Months
	values := pipeline.Series(months, func(m model.MonthRecord) float64 { return m.TotalRevenue })
	labels := make([]string, len(months))
	for i, m := range months {
		if i%model.MonthsPerYear == 0 {
			labels[i] = strconv.Itoa(m.Year)
		}
	}

	chart := components.BarChart(values, labels, theme.Active.Green,
		components.CardInnerWidth(a.width), chartHeight, model.MonthsPerYear)
	return components.ContentCard("Monthly revenue", chart, a.width)
}
