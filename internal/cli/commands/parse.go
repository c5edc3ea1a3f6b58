package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/pkg/output"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Mode   string
	Output string
	Quiet  bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a lyrics file into a timed line sequence",
		Long: `Parse a lyrics file and print the resulting line sequence.

Lines carrying a [mm:ss.xx] tag are sorted by time. Lines without a tag are
kept as untimed and listed last. Files ending in .lrc are always parsed as
timed text; other files are sampled to choose between timed and plain.

Example:
  lyricsync parse song.lrc
  lyricsync parse --mode plain lyrics.txt
  lyricsync parse -o json song.lrc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Parse mode (auto|timed|plain), default from config")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no lines")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
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

	if err := formatter.FormatDocument(ctx, output.NewDocumentReport(doc), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
