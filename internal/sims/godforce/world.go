// Package godforce implements the 3D cyclic automaton: a lattice of colored,
// energized cells whose rules are perturbed by periodically replaced godforce
// parameters and one-shot color bursts.
package godforce

import (
	"math"

	"godforce-ca/internal/core"
	"godforce-ca/internal/director"
	"godforce-ca/internal/grid"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"
	pcore "godforce-ca/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

// World is the simulation context. It owns the lattice, the live parameter
// record, the derived tunables and the active palette; the loop driver is its
// only writer.
type World struct {
	cfg Config

	cur *grid.Grid
	nxt *grid.Grid

	// centerDist caches each cell's depth-weighted distance from the lattice
	// center divided by half the grid size.
	centerDist []float64
	scratch    []grid.Coord

	book     *palette.Book
	active   string
	params   params.Params
	tunables params.Tunables
	vib      palette.Vibrancy
	synth    palette.Synth

	rng     *pcore.RNG
	elapsed float64
	ticks   uint64
}

// New validates cfg and returns a seeded world.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := grid.New(cfg.GridSize, cfg.DepthLayers)
	if err != nil {
		return nil, err
	}
	nxt, err := grid.New(cfg.GridSize, cfg.DepthLayers)
	if err != nil {
		return nil, err
	}
	book := palette.Default()
	w := &World{
		cfg:     cfg,
		cur:     cur,
		nxt:     nxt,
		scratch: make([]grid.Coord, 0, grid.MaxNeighbors),
		book:    book,
		active:  cfg.Palette,
	}
	if !book.Has(w.active) {
		w.active = palette.Neon
	}
	w.refreshColorModel()
	w.cacheCenterDistances()
	w.Reset(cfg.Seed)
	return w, nil
}

func (w *World) refreshColorModel() {
	w.vib = palette.Vibrancy{MinSaturation: w.cfg.Color.MinSaturation, MinLightness: w.cfg.Color.MinLightness}
	w.synth = palette.Synth{MinSaturation: w.cfg.Godforce.SynthMinSaturation, MinLightness: w.cfg.Godforce.SynthMinLightness}
}

func (w *World) cacheCenterDistances() {
	w.centerDist = make([]float64, w.cur.Len())
	cl, cr, cc := w.cur.Center()
	half := float64(w.cfg.GridSize) / 2
	for i := range w.centerDist {
		c := w.cur.CoordOf(i)
		dr := float64(c.Row) - cr
		dc := float64(c.Col) - cc
		dl := (float64(c.Layer) - cl) * grid.DepthWeight
		w.centerDist[i] = math.Sqrt(dr*dr+dc*dc+dl*dl) / half
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "godforce" }

// Size reports the lattice dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.cfg.GridSize, H: w.cfg.GridSize, D: w.cfg.DepthLayers}
}

// Reset reseeds the world and randomizes every cell. A zero seed draws one
// from the clock.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		w.rng = pcore.NewTimeRNG()
	} else {
		w.rng = pcore.NewRNG(seed)
	}
	w.elapsed = 0
	w.ticks = 0
	w.params = params.Default(w.rng)
	w.remap()

	cells := w.cur.Cells()
	for i := range cells {
		cells[i] = grid.Cell{
			Shape:  grid.RandomShape(w.rng),
			Active: w.rng.Chance(w.cfg.Rules.InitialActiveChance),
			Color:  w.vib.Enforce(w.book.Random(w.active, w.rng)),
			Energy: w.rng.Between(0.7, 1),
		}
	}
	w.seedGodforceColors()
	w.nxt.CopyFrom(w.cur)
}

func (w *World) seedGodforceColors() {
	cells := w.cur.Cells()
	for i := range cells {
		if !w.rng.Chance(w.cfg.Rules.SeedColorChance) {
			continue
		}
		cells[i].Color = w.vib.Enforce(w.synthesize())
		cells[i].Energy = w.rng.Between(0.8, 1)
		cells[i].Active = true
	}
}

func (w *World) synthesize() colorful.Color {
	return w.synth.Color(w.params.DominantHue, w.params.ColorMode, w.params.ColorSpread, w.rng)
}

// Grid exposes the committed lattice. Callers must not retain it across a
// Step, which swaps buffers.
func (w *World) Grid() *grid.Grid { return w.cur }

// Params returns the live parameter record.
func (w *World) Params() params.Params { return w.params }

// SetParams replaces the live record without any of the side effects of
// Apply.
func (w *World) SetParams(p params.Params) { w.params = p }

// Tunables returns the derived tunables.
func (w *World) Tunables() params.Tunables { return w.tunables }

// Palette returns the active palette name.
func (w *World) Palette() string { return w.active }

// Book exposes the palette book.
func (w *World) Book() *palette.Book { return w.book }

// Vibrancy returns the color floors in force.
func (w *World) Vibrancy() palette.Vibrancy { return w.vib }

// Config returns the configuration, including runtime adjustments.
func (w *World) Config() Config { return w.cfg }

// TickRate is the per-frame tick probability.
func (w *World) TickRate() float64 { return w.cfg.Schedule.TickRate }

// Elapsed returns the simulated time last supplied by the driver.
func (w *World) Elapsed() float64 { return w.elapsed }

// SetElapsed records the simulated time used by time-dependent flows.
func (w *World) SetElapsed(t float64) { w.elapsed = t }

// Ticks counts completed steps since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Morph re-rolls one random cell's shape with probability MorphChance and
// reports whether it did.
func (w *World) Morph() bool {
	if !w.rng.Chance(w.tunables.MorphChance) {
		return false
	}
	cells := w.cur.Cells()
	i := w.rng.IntN(len(cells))
	cells[i].Shape = grid.RandomShape(w.rng)
	return true
}

// Apply installs a director update. The record is replaced wholesale and the
// tunables are re-derived from it. Successful updates also switch the palette
// and fire one or more color bursts; fallbacks do neither.
func (w *World) Apply(u director.Update) {
	w.params = u.Params
	if !u.Fallback {
		if u.Palette != "" && w.book.Has(u.Palette) {
			w.active = u.Palette
		}
		count := 1 + w.rng.IntN(max(w.cfg.Godforce.BurstCountMax, 1))
		for i := 0; i < count; i++ {
			w.RandomBurst()
		}
	}
	w.remap()
}

// remap re-derives the tunables from the live shape behavior.
func (w *World) remap() {
	w.tunables = params.Derive(w.params.ShapeBehavior, w.cfg.Godforce.AnimationImpact)
}

// Stats summarizes the committed lattice.
type Stats struct {
	Cells      int
	Active     int
	MeanEnergy float64
}

// Stats computes summary statistics over the committed lattice.
func (w *World) Stats() Stats {
	cells := w.cur.Cells()
	s := Stats{Cells: len(cells)}
	total := 0.0
	for i := range cells {
		if cells[i].Active {
			s.Active++
		}
		total += cells[i].Energy
	}
	if len(cells) > 0 {
		s.MeanEnergy = total / float64(len(cells))
	}
	return s
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func init() {
	core.Register("godforce", func(m map[string]string) (core.Sim, error) {
		return New(FromMap(DefaultConfig(), m))
	})
}
