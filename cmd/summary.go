package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/scaleos/internal/cli"
	"github.com/theirongolddev/scaleos/internal/model"
	"github.com/theirongolddev/scaleos/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Yearly revenue and workload rollup",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	proj, err := pipeline.Build(s.assumptions)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCALEOS MODEL  %s preset", s.presetName)))
	fmt.Println()

	fmt.Print(cli.RenderTable(inputsTable(s.assumptions)))
	fmt.Println()
	fmt.Print(cli.RenderTable(yearlyTable(proj)))

	peak, at := pipeline.PeakActiveCEOs(proj.Months)
	fmt.Println()
	fmt.Printf("  Active CEOs  %s  peak %s (%s)\n",
		cli.RenderSparkline(pipeline.Series(proj.Months, func(m model.MonthRecord) float64 { return m.ActiveCEOs })),
		cli.FormatCount(peak), at.Label())
	fmt.Println()

	return nil
}

func inputsTable(a model.Assumptions) cli.Table {
	return cli.Table{
		Title:   "Inputs",
		Headers: []string{"Input", "Value"},
		Rows: [][]string{
			{"Tenure (months)", cli.FormatCount(a.TenureMonths)},
			{"Initial CEOs (Month 1)", cli.FormatCount(a.InitialCEOs)},
			{"New CEOs added / month", cli.FormatCount(a.NewCEOsPerMonth)},
			{"On-Demand price per course", cli.FormatCurrency(a.OnDemandPrice)},
		},
	}
}

func yearlyTable(p model.Projection) cli.Table {
	headers := []string{"Metric"}
	for _, y := range p.Years {
		headers = append(headers, strconv.Itoa(y.Year))
	}
	headers = append(headers, "Total")

	row := func(label string, metric func(model.YearSummary) float64, format func(float64) string) []string {
		r := []string{label}
		for _, y := range p.Years {
			r = append(r, format(metric(y)))
		}
		return append(r, format(metric(p.Totals)))
	}

	growth := []string{"Revenue growth", "-"}
	for i := 1; i < len(p.Years); i++ {
		growth = append(growth, cli.FormatGrowth(p.Years[i].TotalRevenue, p.Years[i-1].TotalRevenue))
	}
	growth = append(growth, "")

	return cli.Table{
		Title:   "Yearly summary",
		Headers: headers,
		Rows: [][]string{
			row("CEO Revenue", func(y model.YearSummary) float64 { return y.CEORevenue }, cli.FormatCurrency),
			row("Workshop Revenue", func(y model.YearSummary) float64 { return y.WorkshopRevenue }, cli.FormatCurrency),
			row("Sprint Revenue", func(y model.YearSummary) float64 { return y.SprintRevenue }, cli.FormatCurrency),
			row("On-Demand Revenue", func(y model.YearSummary) float64 { return y.OnDemandRevenue }, cli.FormatCurrency),
			{cli.Separator},
			row("Total Revenue", func(y model.YearSummary) float64 { return y.TotalRevenue }, cli.FormatCurrency),
			row("Days", func(y model.YearSummary) float64 { return y.TotalDays }, cli.FormatDays),
			{cli.Separator},
			growth,
		},
	}
}
