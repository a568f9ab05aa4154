//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"godforce-ca/internal/app"
	"godforce-ca/internal/sims/godforce"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	world, err := godforce.New(cfg)
	if err != nil {
		log.Fatalf("world: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dir := app.NewDirector(cfg, flags.Logger())
	go dir.Run(ctx)

	driver := app.NewDriver(world, dir.Updates(), cfg.Seed)
	game := app.New(ctx, driver, dir, flags.HUDWidth)

	ebiten.SetWindowTitle("godforce")
	ebiten.SetTPS(cfg.Schedule.TPS)
	ebiten.SetWindowSize(cfg.Display.Width+flags.HUDWidth, cfg.Display.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	cancel()
	dir.Wait()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
