package director

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"
	"godforce-ca/pkg/core"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// DefaultInterval separates director cycles when none is configured.
const DefaultInterval = 30 * time.Second

// Update is the outcome of one director cycle. It carries either a validated
// record from the source or a random fallback record, never a mix.
type Update struct {
	Params params.Params
	// Palette is the palette selected from the theme label. It is empty on
	// fallback, which leaves the active palette unchanged.
	Palette  string
	Fallback bool
	Err      error
}

// Options configures a Director.
type Options struct {
	Interval time.Duration
	Timeout  time.Duration
	Logger   *log.Logger
	Seed     int64
}

// Director runs fetch cycles in the background and publishes each result on
// Updates. At most one fetch is in flight; cycles that fire while one is
// pending are skipped.
type Director struct {
	src      Source
	interval time.Duration
	timeout  time.Duration
	log      *log.Logger
	sem      *semaphore.Weighted
	updates  chan Update
	wg       sync.WaitGroup

	mu  sync.Mutex
	rng *core.RNG
}

// New constructs a Director. A nil source behaves like Offline.
func New(src Source, opts Options) *Director {
	if src == nil {
		src = Offline
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	rng := core.NewRNG(opts.Seed)
	if opts.Seed == 0 {
		rng = core.NewTimeRNG()
	}
	return &Director{
		src:      src,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		log:      opts.Logger,
		sem:      semaphore.NewWeighted(1),
		updates:  make(chan Update, 1),
		rng:      rng,
	}
}

// Updates delivers finished cycles. The consumer applies them between ticks.
func (d *Director) Updates() <-chan Update { return d.updates }

// Interval returns the cycle period.
func (d *Director) Interval() time.Duration { return d.interval }

// Run triggers a cycle immediately and then once per interval until ctx is
// done. It waits for the in-flight cycle before returning.
func (d *Director) Run(ctx context.Context) error {
	d.Trigger(ctx)
	t := time.NewTicker(d.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			d.Wait()
			return ctx.Err()
		case <-t.C:
			d.Trigger(ctx)
		}
	}
}

// Trigger starts a background cycle unless one is already pending. It
// reports whether a cycle was started.
func (d *Director) Trigger(ctx context.Context) bool {
	if !d.sem.TryAcquire(1) {
		d.log.Printf("director: previous update still pending, skipping cycle")
		return false
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		u := d.Resolve(ctx)
		if ctx.Err() != nil {
			d.log.Printf("director: shutting down, discarding update")
			return
		}
		select {
		case d.updates <- u:
		case <-ctx.Done():
			d.log.Printf("director: shutting down, discarding update")
		}
	}()
	return true
}

// Wait blocks until any in-flight cycle has finished.
func (d *Director) Wait() { d.wg.Wait() }

// Resolve runs one fetch synchronously and turns any failure into a random
// fallback record.
func (d *Director) Resolve(ctx context.Context) Update {
	fctx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	p, err := d.src.Fetch(fctx)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		fb := d.fallback()
		if errors.Cause(err) == ErrOffline {
			d.log.Printf("director: parameter source offline, using random parameters")
		} else {
			d.log.Printf("director: parameter source failed, using random parameters: %v", err)
		}
		return Update{Params: fb, Fallback: true, Err: err}
	}

	name := palette.ForTheme(p.ColorTheme)
	d.log.Printf("director: godforce updated: %q using %s palette", p.ColorTheme, name)
	return Update{Params: p, Palette: name}
}

func (d *Director) fallback() params.Params {
	d.mu.Lock()
	defer d.mu.Unlock()
	return params.Random(d.rng)
}
