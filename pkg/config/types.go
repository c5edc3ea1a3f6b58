// Package config provides configuration loading and validation for lyricsync.
package config

import (
	"time"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Parse   ParseConfig   `yaml:"parse"`
	Convert ConvertConfig `yaml:"convert"`
	Output  OutputConfig  `yaml:"output"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// PlayerConfig controls the live position poller.
type PlayerConfig struct {
	// TickInterval is how often the playback position is sampled.
	// Values below MinTickInterval are rejected.
	TickInterval time.Duration `yaml:"tick_interval"`

	// ContextLines is the number of lines shown around the active one.
	ContextLines int `yaml:"context_lines"`

	// Watch reloads the lyrics file whenever it changes on disk.
	Watch bool `yaml:"watch"`
}

// ParseConfig controls how input files are read.
type ParseConfig struct {
	Mode            string  `yaml:"mode"` // auto, timed, plain
	DetectThreshold float64 `yaml:"detect_threshold"`
	SampleSize      int     `yaml:"sample_size"`
}

// ResolvedMode returns the explicit parse mode, or "" for auto detection.
func (p ParseConfig) ResolvedMode() lrc.Mode {
	if p.Mode == "" || p.Mode == ModeAuto {
		return ""
	}
	m, err := lrc.ParseMode(p.Mode)
	if err != nil {
		return ""
	}
	return m
}

// ConvertConfig controls plain-to-timed conversion.
type ConvertConfig struct {
	// FallbackSpacing is used between lines when no duration is known.
	FallbackSpacing time.Duration `yaml:"fallback_spacing"`
}

// OutputConfig selects the default output format.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// WebhookTrigger determines which playback events a webhook receives.
type WebhookTrigger string

const (
	// WebhookTriggerChange fires when the active line changes (default).
	WebhookTriggerChange WebhookTrigger = "change"
	// WebhookTriggerAlways also fires when lyrics are loaded or reloaded.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines an endpoint that receives playback events as JSON.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token. ${VAR} and $VAR are expanded.
	Token string `yaml:"token,omitempty"`

	// Trigger defaults to "change" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Requests run on the poll loop,
	// so keep it short. Defaults to 2s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
