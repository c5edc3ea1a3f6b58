package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
)

// AtOptions holds command-line options for the at command.
type AtOptions struct {
	Mode    string
	Output  string
	Context int
	Quiet   bool
}

// NewAtCommand creates the at command.
func NewAtCommand() *cobra.Command {
	opts := &AtOptions{}

	cmd := &cobra.Command{
		Use:   "at <file> <time>",
		Short: "Show the lyric line active at a playback position",
		Long: `Resolve which lyric line is active at the given playback position.

The active line is the last timed line whose offset is at or before the
position. Time may be a tag (1:23.45), milliseconds (83450) or a duration
(1m23.45s).

Exit codes:
  0 - A line is active
  1 - No line is active yet (before the first line, or no timed lines)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAt(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Parse mode (auto|timed|plain), default from config")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().IntVarP(&opts.Context, "context", "c", 0, "Lines to show around the active one, default from config")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the active line's text")

	return cmd
}

func runAt(cmd *cobra.Command, args []string, opts *AtOptions) error {
	ctx := contextOf(cmd)

	positionMs, err := parseTimeArg(args[1])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	contextLines := cfg.Player.ContextLines
	if cmd.Flags().Changed("context") {
		contextLines = opts.Context
	}

	loader, err := newLoader(cfg, opts.Mode)
	if err != nil {
		return err
	}

	doc, err := loader.Load(ctx, args[0])
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cfg, opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	index := lrc.ActiveIndex(doc.Lines, positionMs)
	view := output.NewActiveView(doc.Lines, index, positionMs, contextLines)
	view.Path = doc.Path

	if err := formatter.FormatActive(ctx, view, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if index < 0 {
		ExitCode = 1
	}
	return nil
}
