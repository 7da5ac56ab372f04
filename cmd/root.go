package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/scaleos/internal/config"
	"github.com/theirongolddev/scaleos/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagOutput  string
	flagPreset  string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scaleos",
	Short: "ScaleOS financial model generator",
	Long: "Generate the ScaleOS 36-month financial model workbook.\n\n" +
		"Run without arguments to write " + config.DefaultOutputPath + " from the base inputs.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Workbook path (default "+config.DefaultOutputPath+")")
	rootCmd.PersistentFlags().StringVarP(&flagPreset, "preset", "p", "", "Assumption preset: "+strings.Join(config.PresetNames(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// settings is the effective configuration after flags are applied.
type settings struct {
	cfg         config.Config
	presetName  string
	assumptions model.Assumptions
	logger      *slog.Logger
}

// loadSettings is the shared config path used by all commands.
// Flags take precedence over the config file.
func loadSettings() (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}

	if flagOutput != "" {
		cfg.Output.Path = flagOutput
	}
	if flagPreset != "" {
		cfg.Model.Preset = flagPreset
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}

	if cfg.Model.Preset == "" {
		cfg.Model.Preset = config.PresetBase
	}
	a, err := config.Preset(cfg.Model.Preset)
	if err != nil {
		return settings{}, err
	}

	return settings{
		cfg:         cfg,
		presetName:  cfg.Model.Preset,
		assumptions: a,
		logger:      newLogger(cfg.Log.Level),
	}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
