package app

import (
	"fmt"

	"godforce-ca/internal/grid"
	"godforce-ca/internal/render"
	"godforce-ca/internal/sims/godforce"
)

// vignetteFollow is how far the vignette center leans toward the viewport.
const vignetteFollow = 0.8

// Scene converts the display section of cfg into the render settings shared
// by the front ends.
func Scene(cfg godforce.Config) (render.View, render.Vignette, render.Piercing) {
	d := cfg.Display
	view := render.View{
		Layout:   grid.DefaultLayout(cfg.GridSize),
		Depth:    cfg.DepthLayers,
		Speed:    d.ViewportSpeed,
		Range:    d.ViewportRange,
		Fade:     d.FadeDistance,
		Distance: d.CameraDistance,
	}
	vig := render.Vignette{
		Intensity: d.VignetteIntensity,
		Radius:    d.VignetteRadius,
		Falloff:   d.VignetteFalloff,
		Follow:    vignetteFollow,
	}
	return view, vig, render.Piercing{Radius: d.CursorRadius, Depth: d.CursorDepth}
}

// Status is the one-line summary shown by the front ends.
func Status(d *Driver) string {
	w := d.World()
	u, n := d.LastUpdate()
	s := fmt.Sprintf("t=%.2f tick=%d upd=%d", d.Elapsed(), w.Ticks(), n)
	switch {
	case n > 0 && u.Fallback:
		s += " random"
	case n > 0:
		s += " " + w.Palette()
	}
	if d.Paused() {
		s += " paused"
	}
	return s
}
