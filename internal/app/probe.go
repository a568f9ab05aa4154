package app

import (
	"context"
	"runtime"

	"godforce-ca/internal/director"
	"godforce-ca/internal/sims/godforce"

	"golang.org/x/sync/errgroup"
)

// ProbeResult summarizes one headless run.
type ProbeResult struct {
	Seed    int64
	Frames  int
	Ticks   uint64
	Updates int
	Palette string
	Stats   godforce.Stats
}

// ProbeOptions configures Probe.
type ProbeOptions struct {
	Frames int
	// RemixEvery resolves a director cycle every n frames; 0 disables it.
	RemixEvery int
	Workers    int
}

// Probe runs cfg headlessly once per seed, in parallel, and reports the
// final lattice statistics of each run in seed order. Director cycles use
// src synchronously so runs stay deterministic for a deterministic source.
func Probe(ctx context.Context, cfg godforce.Config, src director.Source, seeds []int64, opts ProbeOptions) ([]ProbeResult, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	results := make([]ProbeResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			res, err := probeOne(ctx, cfg, src, seed, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func probeOne(ctx context.Context, cfg godforce.Config, src director.Source, seed int64, opts ProbeOptions) (ProbeResult, error) {
	cfg.Seed = seed
	w, err := godforce.New(cfg)
	if err != nil {
		return ProbeResult{}, err
	}
	dir := director.New(src, director.Options{Timeout: cfg.Director.Timeout, Seed: seed})
	updates := make(chan director.Update, 1)
	d := NewDriver(w, updates, seed)
	for f := 1; f <= opts.Frames; f++ {
		if err := ctx.Err(); err != nil {
			return ProbeResult{}, err
		}
		if opts.RemixEvery > 0 && f%opts.RemixEvery == 0 {
			updates <- dir.Resolve(ctx)
		}
		d.Frame()
	}
	_, n := d.LastUpdate()
	return ProbeResult{
		Seed:    seed,
		Frames:  opts.Frames,
		Ticks:   w.Ticks(),
		Updates: n,
		Palette: w.Palette(),
		Stats:   w.Stats(),
	}, nil
}
