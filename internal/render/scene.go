// Package render holds the presentation math shared by the front ends and the
// ebiten painter that draws the lattice as wireframes.
package render

import (
	"math"

	"godforce-ca/internal/grid"
)

const (
	layerXRange     = 0.4
	layerYRange     = 0.2
	layerSpeed      = 0.3
	layerPhase      = 40
	wobbleIntensity = 0.8
	wobbleFrequency = 18

	inactiveActivity = 0.3
	rotationAmount   = 0.3
)

// LayerOffset is the XY drift applied to a whole layer at time t: a slow
// sinusoid with a per-layer phase plus a fast wobble.
func LayerOffset(layer int, t float64) grid.Vec2 {
	phase := float64(layer) * layerPhase
	l := float64(layer)
	return grid.Vec2{
		X: math.Sin(t*layerSpeed+phase)*layerXRange + math.Sin(t*wobbleFrequency+l)*wobbleIntensity,
		Y: math.Cos(t*layerSpeed*0.7+phase)*layerYRange + math.Cos(t*wobbleFrequency*1.3+l)*wobbleIntensity,
	}
}

// View holds the display settings that shape the viewport path and fading.
type View struct {
	Layout   grid.Layout
	Depth    int
	Speed    float64
	Range    float64
	Fade     float64
	Distance float64
}

// ViewportCenter is the point the camera looks at, following a Lissajous-like
// path over the lattice and drifting through its depth.
func (v View) ViewportCenter(t float64) grid.Vec3 {
	s := t * v.Speed
	extent := float64(v.Layout.Effective()) / 2 * v.Layout.Spacing * v.Range
	return grid.Vec3{
		X: math.Sin(s) * math.Cos(s*0.7) * extent,
		Y: math.Cos(s*1.3) * math.Sin(s*0.5) * extent,
		Z: (math.Sin(s*0.3)*0.5 + 0.5) * -v.Layout.LayerSpacing * float64(v.Depth-1),
	}
}

// Appearance is how a single cell is drawn on a frame.
type Appearance struct {
	Opacity   float64
	RotationX float64
	RotationY float64
}

// Visual computes a cell's opacity and rotation from its distance to the
// viewport. Inactive cells are drawn dimmed regardless of energy.
func (v View) Visual(pos, viewport grid.Vec3, active bool, energy float64, layer int, t float64) Appearance {
	dx := pos.X - viewport.X
	dy := pos.Y - viewport.Y
	dz := pos.Z - viewport.Z
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)

	fade := 1.0
	if v.Fade > 0 {
		fade = 1 - d/v.Fade
	}
	activity := inactiveActivity
	if active {
		activity = energy
	}
	phase := t + float64(layer)*0.2
	return Appearance{
		Opacity:   clamp01(fade * activity),
		RotationX: math.Sin(phase) * rotationAmount * fade * activity,
		RotationY: math.Cos(phase) * rotationAmount * fade * activity,
	}
}

// Pierce returns how far the cursor pushes a cell at pos into the screen.
// The push falls off linearly in the XY plane and is zero at or beyond
// radius.
func Pierce(pos, cursor grid.Vec3, radius, depth float64) float64 {
	if radius <= 0 {
		return 0
	}
	d := math.Hypot(pos.X-cursor.X, pos.Y-cursor.Y)
	if d >= radius {
		return 0
	}
	return (1 - d/radius) * depth
}

// Cursor smooths the projected pointer position toward its target.
type Cursor struct {
	Pos    grid.Vec3
	Follow float64
	Active bool
}

// Track moves the cursor a Follow fraction of the way to target.
func (c *Cursor) Track(target grid.Vec3) {
	c.Pos.X += (target.X - c.Pos.X) * c.Follow
	c.Pos.Y += (target.Y - c.Pos.Y) * c.Follow
	c.Pos.Z += (target.Z - c.Pos.Z) * c.Follow
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
