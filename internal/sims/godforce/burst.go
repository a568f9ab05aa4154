package godforce

import (
	"godforce-ca/internal/grid"
	"godforce-ca/internal/palette"

	"github.com/lucasb-eyer/go-colorful"
)

// Burst pulls every cell within radius of focal toward col. The pull falls
// off linearly with depth-weighted distance and is strongest at the focal
// cell; affected cells gain energy and become active. Bursts do not wrap.
func (w *World) Burst(focal grid.Coord, radius int, col colorful.Color) int {
	if radius <= 0 {
		return 0
	}
	r := float64(radius)
	touched := 0
	cells := w.cur.Cells()
	for layer := max(focal.Layer-radius/grid.DepthWeight, 0); layer <= min(focal.Layer+radius/grid.DepthWeight, w.cur.Depth-1); layer++ {
		for row := max(focal.Row-radius, 0); row <= min(focal.Row+radius, w.cur.Size-1); row++ {
			for c := max(focal.Col-radius, 0); c <= min(focal.Col+radius, w.cur.Size-1); c++ {
				at := grid.Coord{Layer: layer, Row: row, Col: c}
				d := grid.Distance(at, focal)
				if d > r {
					continue
				}
				factor := (1 - d/r) * w.cfg.Godforce.BurstIntensity
				cell := &cells[w.cur.Index(at)]
				cell.Color = w.vib.Enforce(palette.Lerp(cell.Color, col, factor))
				cell.Energy = clamp01(cell.Energy + factor*0.5)
				cell.Active = true
				touched++
			}
		}
	}
	return touched
}

// RandomBurst fires a burst at a random focal cell with a synthesized color
// and a radius drawn from the configured range.
func (w *World) RandomBurst() int {
	g := w.cfg.Godforce
	focal := grid.Coord{
		Layer: w.rng.IntN(w.cur.Depth),
		Row:   w.rng.IntN(w.cur.Size),
		Col:   w.rng.IntN(w.cur.Size),
	}
	radius := g.BurstRadiusMin + w.rng.IntN(g.BurstRadiusMax-g.BurstRadiusMin+1)
	return w.Burst(focal, radius, w.synthesize())
}
