// Package cli provides the command-line interface for lyricsync.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/cli/commands"
	"github.com/ccollicutt/lyricsync/internal/logger"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lyricsync",
		Short: "Parse timed lyrics and follow them against a playback position",
		Long: `lyricsync reads LRC-style timed lyrics ([mm:ss.xx] text) and resolves
which line is active at any playback position.

It can:
  - Parse timed or plain lyrics into an ordered line sequence
  - Resolve the active line at a position, or follow a running clock
  - Spread plain lyrics evenly over a track to create timed text
  - Merge several tracks and report lines the lenient parser skipped

Settings are read from --config, or lyricsync.yaml in the working directory
if present, and can be overridden with LYRICSYNC_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(commands.Globals.Verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&commands.Globals.ConfigPath, "config", "", "Config file (default: ./lyricsync.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&commands.Globals.Verbose, "verbose", "v", false, "Verbose output and debug logging")

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewAtCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewStampCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewMergeCommand())
	rootCmd.AddCommand(commands.NewPlayCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
