//go:build !ebiten

package main

import (
	"context"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"tidewalker/internal/app"
	"tidewalker/internal/term"
)

// Without the ebiten tag the game runs in the terminal.
func main() {
	loadDotEnv()
	cfg, opts, err := loadConfig(os.Args[1:], nil)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	defer startTelemetry(ctx, cfg)()

	s, store, err := openSession(ctx, cfg, opts)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	client := term.NewClient(screen, app.NewController(s), term.Options{TPS: cfg.TPS, LogPath: opts.LogPath})
	if err := client.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
