package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/logger"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
	"github.com/ccollicutt/lyricsync/pkg/source"
)

// MergeOptions holds command-line options for the merge command.
type MergeOptions struct {
	Mode   string
	Output string
	Quiet  bool
}

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	opts := &MergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge several timed lyric tracks into one timeline",
		Long: `Merge lyric tracks (for example original lyrics and a translation) into a
single sequence ordered by time. Lines at the same offset keep the order of
the files on the command line. Untimed lines follow all timed ones.

Example:
  lyricsync merge song.lrc song.en.lrc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Parse mode (auto|timed|plain), default from config")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no lines")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, opts *MergeOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	files, err := source.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding file patterns: %w", err)
	}

	loader, err := newLoader(cfg, opts.Mode)
	if err != nil {
		return err
	}

	docs, err := loader.LoadAll(ctx, files)
	if err != nil {
		return err
	}

	tracks := make([][]lrc.Line, len(docs))
	for i, doc := range docs {
		if doc.Mode != lrc.ModeTimed {
			logger.Info("%s parsed as %s; its lines are untimed", doc.Path, doc.Mode)
		}
		tracks[i] = doc.Lines
	}
	merged := lrc.Merge(tracks...)

	formatter, err := newFormatter(cfg, opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	report := output.NewDocumentReport(&source.Document{
		Path:  strings.Join(files, "+"),
		Mode:  lrc.ModeTimed,
		Lines: merged,
	})
	if err := formatter.FormatDocument(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
