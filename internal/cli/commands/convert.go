package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/logger"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// ConvertOptions holds command-line options for the convert command.
type ConvertOptions struct {
	Duration time.Duration
	Spacing  time.Duration
	Write    string
	Force    bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Add evenly spaced timestamps to plain lyrics",
		Long: `Convert plain lyrics into timed text.

Blank lines are dropped. With --duration, the remaining lines are spread
evenly across the track; line i starts at floor(i * duration / count).
Without it, lines are spaced by the configured fallback spacing (2s unless
convert.fallback_spacing says otherwise).

Example:
  lyricsync convert lyrics.txt --duration 3m30s
  lyricsync convert lyrics.txt --duration 3m30s --write song.lrc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.Duration, "duration", "d", 0, "Track duration (e.g., 3m30s)")
	cmd.Flags().DurationVar(&opts.Spacing, "spacing", 0, "Spacing between lines when duration is unknown, default from config")
	cmd.Flags().StringVarP(&opts.Write, "write", "w", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite the --write file if it exists")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	ctx := contextOf(cmd)

	if opts.Duration < 0 {
		return fmt.Errorf("invalid --duration %v: must not be negative", opts.Duration)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	spacing := cfg.Convert.FallbackSpacing
	if cmd.Flags().Changed("spacing") {
		if opts.Spacing <= 0 {
			return fmt.Errorf("invalid --spacing %v: must be positive", opts.Spacing)
		}
		spacing = opts.Spacing
	}

	loader, err := newLoader(cfg, string(lrc.ModePlain))
	if err != nil {
		return err
	}
	doc, err := loader.Load(ctx, args[0])
	if err != nil {
		return err
	}

	if lrc.Inspect(doc.Text).Timed > 0 {
		logger.Info("%s already contains timestamps; existing tags are kept as text", doc.Path)
	}

	durationMs := float64(opts.Duration) / float64(time.Millisecond)
	result := lrc.DistributeText(doc.Text, durationMs, int(spacing/time.Millisecond))

	if opts.Write == "" {
		if result != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
		return nil
	}

	if !opts.Force {
		if _, err := os.Stat(opts.Write); err == nil {
			return fmt.Errorf("output file already exists: %s (use --force to overwrite)", opts.Write)
		}
	}

	// #nosec G306 - lyrics files don't need restrictive permissions
	if err := os.WriteFile(opts.Write, []byte(result+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Success("wrote %s", opts.Write)
	return nil
}
