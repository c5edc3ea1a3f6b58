package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
)

// Load reads and validates a configuration file. Variables from a .env file
// in the working directory are applied before environment overrides.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return finish(cfg)
}

// LoadOrDefault loads path when given. With an empty path it loads DefaultFile
// if one exists in the working directory and otherwise starts from
// DefaultConfig. Environment overrides apply in every case.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(ctx, DefaultFile)
	}
	return finish(DefaultConfig())
}

func finish(cfg *Config) (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors. Zero values that have a
// sensible default are filled in.
func Validate(cfg *Config) error {
	if err := validatePlayer(&cfg.Player); err != nil {
		return fmt.Errorf("player.%w", err)
	}
	if err := validateParse(&cfg.Parse); err != nil {
		return fmt.Errorf("parse.%w", err)
	}
	if err := validateConvert(&cfg.Convert); err != nil {
		return fmt.Errorf("convert.%w", err)
	}
	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output.%w", err)
	}

	for i := range cfg.Webhooks {
		if err := ValidateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}
	return nil
}

func validatePlayer(p *PlayerConfig) error {
	if p.TickInterval == 0 {
		p.TickInterval = DefaultTickInterval
	}
	if p.TickInterval < MinTickInterval {
		return fmt.Errorf("tick_interval: %v is below the minimum of %v", p.TickInterval, MinTickInterval)
	}
	if p.ContextLines < 0 {
		return errors.New("context_lines: must be >= 0")
	}
	return nil
}

func validateParse(p *ParseConfig) error {
	if p.Mode == "" {
		p.Mode = DefaultMode
	}
	if p.Mode != ModeAuto {
		if _, err := lrc.ParseMode(p.Mode); err != nil {
			return fmt.Errorf("mode: invalid value %q (must be auto, timed, or plain)", p.Mode)
		}
	}
	if p.DetectThreshold <= 0 || p.DetectThreshold > 1 {
		return fmt.Errorf("detect_threshold: %v must be in (0, 1]", p.DetectThreshold)
	}
	if p.SampleSize < 1 {
		return errors.New("sample_size: must be >= 1")
	}
	return nil
}

func validateConvert(c *ConvertConfig) error {
	if c.FallbackSpacing == 0 {
		c.FallbackSpacing = DefaultFallbackSpacing
	}
	if c.FallbackSpacing < 0 {
		return errors.New("fallback_spacing: must be positive")
	}
	return nil
}

func validateOutput(o *OutputConfig) error {
	if o.Format == "" {
		o.Format = DefaultOutputFormat
	}
	if _, err := output.New(o.Format, output.FormatOptions{}); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// ValidateWebhook checks a single webhook and fills in its defaults.
func ValidateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	switch wh.Trigger {
	case "":
		wh.Trigger = WebhookTriggerChange
	case WebhookTriggerChange, WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be change, always, or never)", wh.Trigger)
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}
	return nil
}

// expandEnvVar expands a value of the form ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}
