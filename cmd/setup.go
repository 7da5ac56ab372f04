package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		// A broken file is replaced by whatever the wizard collects.
		cfg = config.DefaultConfig()
	}

	form := newSetupForm(&cfg)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.Output.Path = strings.TrimSpace(cfg.Output.Path)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `scaleos setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func newSetupForm(cfg *config.Config) *huh.Form {
	presetOpts := make([]huh.Option[string], 0, len(config.PresetNames()))
	for _, name := range config.PresetNames() {
		presetOpts = append(presetOpts, huh.NewOption(name, name))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Assumption preset").
				Description("Inputs written to F2:F5 and constants baked into the monthly formulas.").
				Options(presetOpts...).
				Value(&cfg.Model.Preset),
			huh.NewInput().
				Title("Workbook path").
				Value(&cfg.Output.Path).
				Validate(validateOutputPath),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("warn", "warn"),
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
				).
				Value(&cfg.Log.Level),
		),
	)
}

func validateOutputPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("path is required")
	}
	if !strings.HasSuffix(strings.ToLower(s), ".xlsx") {
		return errors.New("path must end in .xlsx")
	}
	return nil
}
