package cmd

import (
	"fmt"

	"github.com/theirongolddev/scaleos/internal/cli"
	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/model"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List assumption presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	names := config.PresetNames()
	sets := make([]model.Assumptions, len(names))
	for i, name := range names {
		a, err := config.Preset(name)
		if err != nil {
			return err
		}
		sets[i] = a
	}

	row := func(label string, lever func(model.Assumptions) float64, format func(float64) string) []string {
		r := []string{label}
		for _, a := range sets {
			r = append(r, format(lever(a)))
		}
		return r
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Presets",
		Headers: append([]string{"Lever"}, names...),
		Rows: [][]string{
			row("Tenure (months)", func(a model.Assumptions) float64 { return a.TenureMonths }, cli.FormatCount),
			row("Initial CEOs", func(a model.Assumptions) float64 { return a.InitialCEOs }, cli.FormatCount),
			row("New CEOs / month", func(a model.Assumptions) float64 { return a.NewCEOsPerMonth }, cli.FormatCount),
			row("CEO price / month", func(a model.Assumptions) float64 { return a.CEOPricePerMonth }, cli.FormatCurrency),
			{cli.Separator},
			row("Workshops / month", func(a model.Assumptions) float64 { return a.WorkshopBasePerMonth }, cli.FormatCount),
			row("Quarter-end bonus", func(a model.Assumptions) float64 { return a.WorkshopQuarterBonus }, cli.FormatCount),
			row("Workshop price", func(a model.Assumptions) float64 { return a.WorkshopPrice }, cli.FormatCurrency),
			row("Sprints / quarter", func(a model.Assumptions) float64 { return a.SprintsPerQuarter }, cli.FormatCount),
			row("Sprint price", func(a model.Assumptions) float64 { return a.SprintPrice }, cli.FormatCurrency),
			{cli.Separator},
			row("On-demand courses / month", func(a model.Assumptions) float64 { return a.OnDemandCourses }, cli.FormatCount),
			row("On-demand price", func(a model.Assumptions) float64 { return a.OnDemandPrice }, cli.FormatCurrency),
		},
	}))
	fmt.Println()
	fmt.Println("  Use --preset <name> or `scaleos setup` to pick one.")

	return nil
}
