package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"godforce-ca/internal/app"
	"godforce-ca/internal/director"
	"godforce-ca/internal/sims/godforce"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML file merged over the built-in defaults")
	frames := flag.Int("frames", 2000, "frames to simulate per run")
	runs := flag.Int("runs", 4, "number of seeds to probe")
	seed := flag.Int64("seed", 1337, "first seed; runs use consecutive seeds")
	remix := flag.Int("remix", 500, "resolve a director cycle every n frames (0 disables)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	online := flag.Bool("online", false, "query the configured parameter source instead of using random records")
	dump := flag.String("dump-config", "", "write the effective configuration to this path and exit")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg, err := godforce.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	m := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	cfg = godforce.FromMap(cfg, m)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if *dump != "" {
		if err := cfg.WriteYAML(*dump); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *dump)
		return
	}

	src := director.Offline
	if *online {
		src = app.NewSource(cfg.Director)
	}
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	results, err := app.Probe(context.Background(), cfg, src, seeds, app.ProbeOptions{
		Frames:     *frames,
		RemixEvery: *remix,
		Workers:    *workers,
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Printf("seed %d: %d frames, %d ticks, %d updates, palette %s, active %d/%d (%.1f%%), mean energy %.3f\n",
			r.Seed, r.Frames, r.Ticks, r.Updates, r.Palette, r.Stats.Active, r.Stats.Cells,
			100*float64(r.Stats.Active)/float64(max(r.Stats.Cells, 1)), r.Stats.MeanEnergy)
	}
}
