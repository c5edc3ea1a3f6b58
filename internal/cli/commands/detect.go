package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/logger"
	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/source"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	Quiet       bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Detect whether lyrics files are timed or plain",
		Long: `Sample lyrics files and report whether they carry [mm:ss.xx] tags.

Reports the suggested parse mode, the share of sampled lines that are tagged,
and which fraction styles appear (centiseconds, milliseconds, deciseconds,
whole seconds). Files ending in .lrc are always reported as timed.

Arguments may be files, directories or glob patterns.

Optionally generates a starter config file with --write-config, using the
mode detected for the first file.

Example:
  lyricsync detect song.lrc
  lyricsync detect 'lyrics/*.txt'
  lyricsync detect -w lyricsync.yaml lyrics.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 0, "Number of lines to sample, default from config")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Mode only, no format breakdown")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	ctx := contextOf(cmd)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sampleSize := cfg.Parse.SampleSize
	if cmd.Flags().Changed("sample") {
		if opts.SampleSize < 1 {
			return fmt.Errorf("invalid --sample %d: must be >= 1", opts.SampleSize)
		}
		sampleSize = opts.SampleSize
	}

	files, err := source.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding file patterns: %w", err)
	}

	formatter, err := newFormatter(cfg, opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	d := detector.New(
		detector.WithSampleSize(sampleSize),
		detector.WithThreshold(cfg.Parse.DetectThreshold),
	)

	var first *detector.DetectionResult
	for _, file := range files {
		result, err := d.DetectFromFile(ctx, file)
		if err != nil {
			return fmt.Errorf("detection failed: %w", err)
		}
		if first == nil {
			first = result
		}
		if err := formatter.FormatDetection(ctx, file, result, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	if opts.WriteConfig != "" && first != nil {
		if err := writeStarterConfig(first, files[0], opts.WriteConfig, sampleSize); err != nil {
			return err
		}
	}

	return nil
}

// writeStarterConfig generates a starter config file with the detected mode.
func writeStarterConfig(result *detector.DetectionResult, file, configPath string, sampleSize int) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	config := generateStarterConfig(result, file, sampleSize)

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger.Success("wrote starter config to %s", configPath)
	return nil
}

// generateStarterConfig creates a YAML config template.
func generateStarterConfig(result *detector.DetectionResult, file string, sampleSize int) string {
	return fmt.Sprintf(`# lyricsync configuration
# Generated by: lyricsync detect %s
# Detected mode: %s (%.0f%% of sampled lines tagged)

player:
  tick_interval: 100ms   # minimum 16ms
  context_lines: 2
  watch: false

parse:
  mode: %s              # auto, timed, or plain
  detect_threshold: 0.5
  sample_size: %d

convert:
  fallback_spacing: 2s

output:
  format: text          # text or json
`, file, result.Mode, result.Confidence*100, result.Mode, sampleSize)
}
