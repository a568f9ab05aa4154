package palette

import (
	"math"

	"godforce-ca/pkg/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects the hue strategy used by Synth.
type Mode string

const (
	Harmony  Mode = "harmony"
	Contrast Mode = "contrast"
	Triad    Mode = "triad"
	Rainbow  Mode = "rainbow"
)

// Modes lists every recognized mode.
var Modes = []Mode{Harmony, Contrast, Triad, Rainbow}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	switch m {
	case Harmony, Contrast, Triad, Rainbow:
		return true
	}
	return false
}

// Vibrancy holds the HSL floors every displayed color must meet.
type Vibrancy struct {
	MinSaturation float64
	MinLightness  float64
}

// Enforce raises saturation and lightness to the floors, leaving hue and any
// excess untouched.
func (v Vibrancy) Enforce(c colorful.Color) colorful.Color {
	h, s, l := c.Clamped().Hsl()
	if s < v.MinSaturation {
		s = v.MinSaturation
	}
	if l < v.MinLightness {
		l = v.MinLightness
	}
	return colorful.Hsl(h, s, l).Clamped()
}

// Satisfied reports whether c meets the floors within eps. Pure white has no
// defined saturation and is accepted once its lightness passes.
func (v Vibrancy) Satisfied(c colorful.Color, eps float64) bool {
	_, s, l := c.Hsl()
	if l < v.MinLightness-eps {
		return false
	}
	if l >= 1-eps {
		return true
	}
	return s >= v.MinSaturation-eps
}

// Synth generates vivid colors around a dominant hue.
type Synth struct {
	MinSaturation float64
	MinLightness  float64
}

// Color produces a color for the given mode. Saturation is drawn from
// [MinSaturation, 1) and lightness from [MinLightness, 1). Unknown modes
// behave like rainbow.
func (s Synth) Color(dominantHue float64, mode Mode, spread float64, rng *core.RNG) colorful.Color {
	var hue float64
	switch mode {
	case Harmony:
		hue = dominantHue + rng.Between(-spread, spread)
	case Contrast:
		hue = dominantHue + 0.5 + rng.Between(-spread, spread)
	case Triad:
		hue = dominantHue + float64(rng.IntN(3))/3 + rng.Between(-0.05, 0.05)
	default:
		hue = rng.Float64()
	}
	sat := rng.Between(s.MinSaturation, 1)
	light := rng.Between(s.MinLightness, 1)
	return colorful.Hsl(WrapUnit(hue)*360, sat, light).Clamped()
}

// WrapUnit maps x into [0, 1).
func WrapUnit(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}

// Blend moves c1 toward c2. The effective factor is factor*speed*0.5 clamped
// to [0, 1], so large caller factors still transition gradually.
func Blend(c1, c2 colorful.Color, factor, speed float64) colorful.Color {
	return Lerp(c1, c2, factor*speed*0.5)
}

// Lerp linearly interpolates in RGB with t clamped to [0, 1].
func Lerp(c1, c2 colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0 || math.IsNaN(t):
		return c1
	case t >= 1:
		return c2
	}
	return c1.BlendRgb(c2, t).Clamped()
}

// Hue returns the hue of c in [0, 1).
func Hue(c colorful.Color) float64 {
	h, _, _ := c.Hsl()
	return WrapUnit(h / 360)
}
