//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tidewalker/internal/app"
)

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

	game := app.New(ctx, s, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tidewalker: " + cfg.World)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
