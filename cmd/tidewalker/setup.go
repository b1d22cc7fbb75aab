package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"tidewalker/internal/app"
	"tidewalker/internal/save"
	"tidewalker/internal/session"
	"tidewalker/internal/telemetry"
)

// options are the command-line settings that are not part of app.Config.
type options struct {
	ConfigPath string
	Continue   bool
	LogPath    string
}

func bindOptions(fs *flag.FlagSet, o *options) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML config file")
	fs.BoolVar(&o.Continue, "continue", o.Continue, "resume the saved game for -world")
	fs.StringVar(&o.LogPath, "log", "tidewalker.log", "log file used by the terminal client")
}

// loadConfig resolves settings from defaults, the YAML file, TIDEWALKER_*
// variables and flags, later sources overriding earlier ones.
func loadConfig(args []string, lookup func(string) (string, bool)) (*app.Config, options, error) {
	var opts options

	// First pass only finds -config; every flag is bound so none are rejected.
	pre := flag.NewFlagSet("tidewalker", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	app.NewConfig().Bind(pre)
	bindOptions(pre, &opts)
	if err := pre.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg := app.NewConfig()
	if opts.ConfigPath != "" {
		if err := cfg.LoadFile(opts.ConfigPath); err != nil {
			return nil, opts, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, opts, err
	}

	flags := flag.NewFlagSet("tidewalker", flag.ContinueOnError)
	cfg.Bind(flags)
	bindOptions(flags, &opts)
	if err := flags.Parse(args); err != nil {
		return nil, opts, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

// startTelemetry installs the OTLP exporter when enabled. The returned
// function flushes it.
func startTelemetry(ctx context.Context, cfg *app.Config) func() {
	if !cfg.Telemetry {
		return func() {}
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}

// openSession opens the save store and builds the session, resuming the
// saved game when asked to and one exists.
func openSession(ctx context.Context, cfg *app.Config, opts options) (*session.Session, save.Store, error) {
	store, err := save.Open(cfg.SaveBackend, cfg.SaveDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.SaveBackend, err)
	}
	s, err := session.New(ctx, session.Options{
		World:     cfg.WorldConfig(),
		Name:      cfg.World,
		Camera:    cfg.Camera(),
		DayLength: cfg.DayLength,
		Store:     store,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if opts.Continue {
		err := s.Load(ctx, cfg.World)
		switch {
		case errors.Is(err, save.ErrNotFound):
			log.Printf("no save for %q, starting a new game", cfg.World)
		case err != nil:
			store.Close()
			return nil, nil, err
		}
	}
	return s, store, nil
}

func loadDotEnv() {
	if err := app.LoadDotEnv(); err != nil {
		// Not fatal: variables may be set directly.
		log.Printf("Note: .env file not loaded: %v", err)
	}
}
