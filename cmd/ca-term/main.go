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
	"godforce-ca/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write director logs to this file (the terminal is in use)")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	world, err := godforce.New(cfg)
	if err != nil {
		log.Fatalf("world: %v", err)
	}

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	dir := app.NewDirector(cfg, logger)
	go dir.Run(ctx)

	driver := app.NewDriver(world, dir.Updates(), cfg.Seed)
	err = termview.New(screen, driver, dir).Run(ctx)
	cancel()
	screen.Fini()
	dir.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
