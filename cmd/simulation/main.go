package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/viewer"
)

var configFile = flag.String("config", "", "Configuration file (.json, .yaml), defaults when empty")

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := simulation.LoadOrDefault(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	// the viewer drives the ticks, one per frame
	ebiten.SetTPS(cfg.Run.TickRate)

	runner, err := simulation.NewRunner(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer runner.Stop(ctx)

	ebiten.SetWindowSize(viewer.ScreenWidth, viewer.ScreenHeight)
	ebiten.SetWindowTitle("Flock 3D")
	if err := ebiten.RunGame(viewer.NewGame(ctx, cfg, runner)); err != nil {
		log.Fatal(err)
	}
}
