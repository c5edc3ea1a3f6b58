package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/internal/logger"
	"github.com/ccollicutt/lyricsync/pkg/config"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
	"github.com/ccollicutt/lyricsync/pkg/session"
	"github.com/ccollicutt/lyricsync/pkg/watch"
	"github.com/ccollicutt/lyricsync/pkg/webhook"
)

// PlayOptions holds command-line options for the play command.
type PlayOptions struct {
	Mode    string
	Output  string
	Start   string
	Until   string
	Tick    time.Duration
	Context int
	Watch   bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	opts := &PlayOptions{}

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Follow a lyrics file against a running clock",
		Long: `Play a lyrics file against a wall clock, printing each line as it becomes
active. The clock position is sampled every tick; only changes of the
active line are printed.

Each change can also be posted as JSON to webhooks configured in the config
file or given with --webhook-url, for example to drive a stream overlay.

With --watch the file is re-read whenever it changes on disk and the new
lines take effect immediately, without restarting the clock.

Runs until interrupted or until the clock reaches --until.

Example:
  lyricsync play song.lrc
  lyricsync play song.lrc --start 1:00 --until 2:00
  lyricsync play song.lrc --watch -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Parse mode (auto|timed|plain), default from config")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), default from config")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Clock position to start from (e.g., 1:00, 60s, 60000)")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Stop when the clock reaches this position")
	cmd.Flags().DurationVar(&opts.Tick, "tick", 0, "Position sampling interval, default from config (minimum 16ms)")
	cmd.Flags().IntVarP(&opts.Context, "context", "c", 0, "Lines to show around the active one, default from config")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the file when it changes")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the active line's text")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "change", "Events to post (change|always|never)")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string, opts *PlayOptions) error {
	path := args[0]

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	startMs := 0
	if opts.Start != "" {
		if startMs, err = parseTimeArg(opts.Start); err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
	}

	if opts.Until != "" {
		untilMs, err := parseTimeArg(opts.Until)
		if err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}
		if untilMs <= startMs {
			return fmt.Errorf("--until %s must be after --start %s", lrc.FormatTag(untilMs), lrc.FormatTag(startMs))
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(untilMs-startMs)*time.Millisecond)
		defer cancel()
	}

	contextLines := cfg.Player.ContextLines
	if cmd.Flags().Changed("context") {
		contextLines = opts.Context
	}
	tick := cfg.Player.TickInterval
	if cmd.Flags().Changed("tick") {
		tick = opts.Tick
	}

	loader, err := newLoader(cfg, opts.Mode)
	if err != nil {
		return err
	}
	doc, err := loader.Load(ctx, path)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cfg, opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	var sink session.Sink = output.NewStreamSink(ctx, formatter, cmd.OutOrStdout(), contextLines)
	targets, err := collectWebhooks(cfg, opts)
	if err != nil {
		return err
	}
	if len(targets) > 0 {
		logger.Debug("posting events to %d webhook(s)", len(targets))
		sink = session.Sinks{sink, webhook.NewSink(ctx, webhook.NewClient(), targets, contextLines)}
	}

	player := session.NewPlayer(session.NewWallClock(startMs), sink,
		session.WithErrorHandler(func(err error) {
			logger.Error("delivering event: %v", err)
		}),
	)
	player.Load(doc.Lines)

	if cfg.Player.Watch || opts.Watch {
		w, err := watch.New()
		if err != nil {
			return err
		}
		defer w.Stop()

		reload := func(string) {
			doc, err := loader.Load(ctx, path)
			if err != nil {
				logger.Error("reloading %s: %v", path, err)
				return
			}
			logger.Debug("reloaded %s (%d lines)", path, len(doc.Lines))
			player.Load(doc.Lines)
		}
		onError := func(err error) {
			logger.Error("watching %s: %v", path, err)
		}
		if err := w.Watch(path, reload, onError); err != nil {
			return err
		}
	}

	interval := player.Start(ctx, tick)
	if interval != tick {
		logger.Debug("tick interval %v adjusted to %v", tick, interval)
	}
	logger.Debug("playing %s from %s every %v", path, lrc.FormatTag(startMs), interval)

	<-player.Done()
	player.Stop()
	return nil
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *PlayOptions) ([]webhook.Target, error) {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		wh := config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
		}
		if err := config.ValidateWebhook(&wh); err != nil {
			return nil, fmt.Errorf("invalid --webhook-url: %w", err)
		}
		webhooks = append(webhooks, wh)
	}

	targets := make([]webhook.Target, 0, len(webhooks))
	for _, wh := range webhooks {
		if wh.Trigger == config.WebhookTriggerNever {
			continue
		}
		targets = append(targets, webhook.Target{
			Name:    wh.Name,
			Options: webhook.SendOptions{URL: wh.URL, Token: wh.Token, Timeout: wh.Timeout},
			Loads:   wh.Trigger == config.WebhookTriggerAlways,
		})
	}
	return targets, nil
}
