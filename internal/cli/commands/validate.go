package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a lyricsync configuration file.

Checks:
  - YAML syntax
  - Duration values (tick_interval, fallback_spacing)
  - Tick interval minimum (16ms)
  - Parse mode and output format names
  - Detection threshold and sample size ranges

Environment overrides (LYRICSYNC_*) and a .env file are applied first.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := contextOf(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Tick interval:    %v\n", cfg.Player.TickInterval)
	fmt.Fprintf(out, "  Context lines:    %d\n", cfg.Player.ContextLines)
	fmt.Fprintf(out, "  Watch:            %t\n", cfg.Player.Watch)
	fmt.Fprintf(out, "  Parse mode:       %s\n", cfg.Parse.Mode)
	fmt.Fprintf(out, "  Detect threshold: %.2f (sample %d lines)\n", cfg.Parse.DetectThreshold, cfg.Parse.SampleSize)
	fmt.Fprintf(out, "  Fallback spacing: %v\n", cfg.Convert.FallbackSpacing)
	fmt.Fprintf(out, "  Output format:    %s\n", cfg.Output.Format)

	return nil
}
