// Package cmd implements the scaleos CLI commands.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/scaleos/internal/cli"
	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/workbook"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the financial model workbook",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	report, err := workbook.Generate(s.assumptions, workbook.Options{
		Path:   s.cfg.Output.Path,
		Sheet:  s.cfg.Output.Sheet,
		Logger: s.logger,
	})
	if err != nil {
		return err
	}

	if flagQuiet {
		return nil
	}

	years := make([]string, len(report.Years))
	for i, y := range report.Years {
		years[i] = strconv.Itoa(y)
	}

	fmt.Println(cli.RenderOK("Excel model created: " + report.Path))
	fmt.Println(cli.RenderDetail("Active_CEOs uses a windowed SUMPRODUCT (no OFFSET)"))
	fmt.Println(cli.RenderDetail(fmt.Sprintf("Model spans rows %d to %d (%d months)",
		report.FirstRow, report.LastRow, report.LastRow-report.FirstRow+1)))
	fmt.Println(cli.RenderDetail("Years: " + strings.Join(years, ", ")))
	if s.presetName != "" && s.presetName != config.PresetBase {
		fmt.Println(cli.RenderDetail("Preset: " + s.presetName))
	}
	fmt.Println(cli.RenderDetail("Change inputs in F2-F5 to recalculate"))

	return nil
}
