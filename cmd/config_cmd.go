package cmd

import (
	"fmt"

	"github.com/theirongolddev/scaleos/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	cfg := s.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Output]")
	fmt.Printf("    Path:  %s\n", cfg.Output.Path)
	fmt.Printf("    Sheet: %s\n", cfg.Output.Sheet)
	fmt.Println()

	fmt.Println("  [Model]")
	fmt.Printf("    Preset: %s\n", cfg.Model.Preset)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `scaleos setup` to reconfigure.")
	return nil
}
