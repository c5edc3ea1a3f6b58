package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/session"
)

// Default values for configuration.
const (
	DefaultTickInterval    = session.DefaultInterval
	MinTickInterval        = session.MinInterval
	DefaultContextLines    = 2
	DefaultMode            = ModeAuto
	DefaultFallbackSpacing = time.Duration(lrc.DefaultSpacingMs) * time.Millisecond
	DefaultOutputFormat    = "text"
	DefaultWebhookTimeout  = 2 * time.Second

	// DefaultFile is read when no --config flag is given and it exists.
	DefaultFile = "lyricsync.yaml"

	ModeAuto = "auto"
)

// Environment variable names.
const (
	EnvTickInterval = "LYRICSYNC_TICK_INTERVAL"
	EnvMode         = "LYRICSYNC_MODE"
	EnvOutput       = "LYRICSYNC_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			TickInterval: DefaultTickInterval,
			ContextLines: DefaultContextLines,
		},
		Parse: ParseConfig{
			Mode:            DefaultMode,
			DetectThreshold: detector.DefaultThreshold,
			SampleSize:      detector.DefaultSampleSize,
		},
		Convert: ConvertConfig{
			FallbackSpacing: DefaultFallbackSpacing,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvTickInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		c.Player.TickInterval = d
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Parse.Mode = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}
	return nil
}
