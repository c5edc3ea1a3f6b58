package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/logger"
	"github.com/ccollicutt/lyricsync/pkg/config"
	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
	"github.com/ccollicutt/lyricsync/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// GlobalOptions holds the persistent flags of the root command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

// Globals is bound to the root command's persistent flags.
var Globals = &GlobalOptions{}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx, Globals.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config: tick %v, mode %s, output %s", cfg.Player.TickInterval, cfg.Parse.Mode, cfg.Output.Format)
	return cfg, nil
}

// newLoader builds a file loader. An empty mode falls back to the config.
func newLoader(cfg *config.Config, mode string) (*source.Loader, error) {
	if mode == "" {
		mode = cfg.Parse.Mode
	}

	l := &source.Loader{
		Detector: detector.New(
			detector.WithSampleSize(cfg.Parse.SampleSize),
			detector.WithThreshold(cfg.Parse.DetectThreshold),
		),
	}
	if mode != config.ModeAuto {
		m, err := lrc.ParseMode(mode)
		if err != nil {
			return nil, fmt.Errorf("invalid --mode: %w", err)
		}
		l.Mode = m
	}
	return l, nil
}

// newFormatter builds a formatter. An empty name falls back to the config.
func newFormatter(cfg *config.Config, name string, quiet bool) (output.Formatter, error) {
	if name == "" {
		name = cfg.Output.Format
	}
	return output.New(name, output.FormatOptions{
		Verbose: Globals.Verbose,
		Quiet:   quiet,
	})
}

// parseTimeArg accepts a position as a tag ("1:23.45" or "[01:23.45]"),
// a whole number of milliseconds, or a Go duration ("1m23.45s").
func parseTimeArg(s string) (int, error) {
	s = strings.TrimSpace(s)
	if ms, ok := lrc.ParseTimestamp(strings.Trim(s, "[]")); ok {
		return ms, nil
	}
	if ms, err := strconv.Atoi(s); err == nil {
		return ms, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return int(d / time.Millisecond), nil
	}
	return 0, fmt.Errorf("invalid time %q (use mm:ss.xx, milliseconds, or a duration like 1m23s)", s)
}
