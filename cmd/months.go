package cmd

import (
	"fmt"

	"github.com/theirongolddev/scaleos/internal/cli"
	"github.com/theirongolddev/scaleos/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagYear int

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Month-by-month projection",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

func init() {
	monthsCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Only show one year")
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	proj, err := pipeline.Build(s.assumptions)
	if err != nil {
		return err
	}

	months := proj.Months
	if flagYear != 0 {
		months = pipeline.FilterByYear(months, flagYear)
		if len(months) == 0 {
			return fmt.Errorf("year %d is outside the projection", flagYear)
		}
	}

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			m.Label(),
			cli.FormatCount(m.NewCEOs),
			cli.FormatCount(m.ActiveCEOs),
			cli.FormatCount(m.Workshops),
			cli.FormatCount(m.Sprints),
			cli.FormatCurrency(m.TotalRevenue),
			cli.FormatDays(m.TotalHours),
			cli.FormatDays(m.TotalDays),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Monthly projection (%s preset)", s.presetName),
		Headers: []string{"Month", "New", "Active", "Workshops", "Sprints", "Revenue", "Hours", "Days"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
