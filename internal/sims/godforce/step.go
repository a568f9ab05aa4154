package godforce

import (
	"math"

	"godforce-ca/internal/grid"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"

	"github.com/lucasb-eyer/go-colorful"
)

// Step advances the automaton by one tick. Every cell's next state is read
// from the committed lattice only; the flow and override passes then adjust
// the pending states before the buffers swap.
func (w *World) Step() {
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for i := range cur {
		nxt[i] = w.transition(i)
	}
	for i := range nxt {
		w.perturb(i, &nxt[i])
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.ticks++
}

func (w *World) transition(i int) grid.Cell {
	cells := w.cur.Cells()
	cell := cells[i]

	w.scratch = w.cur.Neighbors(w.cur.CoordOf(i), w.scratch[:0])
	active := 0
	var r, g, b float64
	for _, n := range w.scratch {
		nb := &cells[w.cur.Index(n)]
		if !nb.Active {
			continue
		}
		active++
		r += nb.Color.R
		g += nb.Color.G
		b += nb.Color.B
	}

	next := cell
	if active > 0 {
		k := 1 / float64(active)
		avg := colorful.Color{R: r * k, G: g * k, B: b * k}
		next.Color = w.vib.Enforce(palette.Blend(cell.Color, avg, w.tunables.ColorMixFactor, w.cfg.Color.TransitionSpeed))
		next.Energy = clamp01(cell.Energy + w.tunables.ColorSpreadRate*float64(active)/grid.MaxNeighbors)
	} else {
		next.Energy = clamp01(cell.Energy - w.cfg.Rules.ColorDecayRate)
	}

	if cell.Active {
		next.Active = (active >= 4 && active <= 6) || next.Energy > 0.7
	} else {
		next.Active = active == 6 || next.Energy > 0.9
	}
	if next.Active && w.rng.Chance(w.cfg.Rules.ShapeRerollChance) {
		next.Shape = grid.RandomShape(w.rng)
	}
	return next
}

func (w *World) perturb(i int, c *grid.Cell) {
	c.Energy = clamp01(c.Energy + w.FlowBias(i))
	if w.rng.Chance(0.01 * w.cfg.Godforce.ColorIntensity) {
		c.Color = w.synthesize()
		c.Energy = clamp01(c.Energy + 0.2)
	}
	c.Color = w.vib.Enforce(c.Color)
}

// FlowBias returns the energy added to the cell at index i by the current
// energy flow. Unknown flows contribute nothing.
func (w *World) FlowBias(i int) float64 {
	scale := w.params.EnergyIntensity * w.cfg.Godforce.AnimationImpact
	switch w.params.EnergyFlow {
	case params.Outward:
		return (1 - w.centerDist[i]) * 0.1 * scale
	case params.Inward:
		return w.centerDist[i] * 0.1 * scale
	case params.Pulsing:
		return math.Sin(w.elapsed*2) * 0.05 * scale
	case params.Chaotic:
		return (w.rng.Float64() - 0.5) * 0.1 * scale
	}
	return 0
}
