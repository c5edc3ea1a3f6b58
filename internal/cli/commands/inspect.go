package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/source"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output string
	Quiet  bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Report lines the lenient parser dropped or kept as text",
		Long: `Classify every line of a lyrics file the way the timed parser sees it.

Parsing never fails: a tag whose digits cannot be read drops the line, and
a bracket that is not a tag is kept as untimed text. inspect lists those
lines so they can be fixed.

Exit codes:
  0 - No issues detected
  1 - Dropped lines or non-tag brackets found
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Counts only, no details")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	files, err := source.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding file patterns: %w", err)
	}

	formatter, err := newFormatter(cfg, opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	loader := &source.Loader{Mode: lrc.ModeTimed}
	for _, file := range files {
		doc, err := loader.Load(ctx, file)
		if err != nil {
			return err
		}

		report := lrc.Inspect(doc.Text)
		if err := formatter.FormatInspection(ctx, file, report, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		if report.HasIssues() {
			ExitCode = 1
		}
	}
	return nil
}
