package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"godforce-ca/internal/core"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"

	"github.com/lucasb-eyer/go-colorful"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// HueStrip returns width colors spanning the hue band the record's color mode
// draws from, rendered in HSLuv so equal steps look equally bright.
func HueStrip(p params.Params, width int) []color.RGBA {
	if width <= 0 {
		return nil
	}
	out := make([]color.RGBA, width)
	for i := range out {
		t := float64(i) / float64(max(width-1, 1))
		var hue float64
		switch p.ColorMode {
		case palette.Harmony:
			hue = p.DominantHue + (t*2-1)*p.ColorSpread
		case palette.Contrast:
			hue = p.DominantHue + 0.5 + (t*2-1)*p.ColorSpread
		case palette.Triad:
			hue = p.DominantHue + math.Floor(t*3)/3
		default:
			hue = t
		}
		out[i] = toRGBA(colorful.HSLuv(palette.WrapUnit(hue)*360, 0.9, 0.65).Clamped())
	}
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func shortValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// nextValue steps the control one notch in direction, clamped to its bounds.
// It reports false when the value would not change.
func nextValue(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	current := state.floatValue
	if ctrl.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
		current = float64(state.intValue)
	} else if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if math.Abs(target-current) < 1e-9 {
		return 0, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

var energyStops = []struct {
	t   float64
	col color.RGBA
}{
	{0.0, color.RGBA{R: 20, G: 24, B: 60, A: 150}},
	{0.35, color.RGBA{R: 90, G: 40, B: 140, A: 175}},
	{0.7, color.RGBA{R: 230, G: 90, B: 60, A: 205}},
	{1.0, color.RGBA{R: 255, G: 235, B: 160, A: 230}},
}

// EnergyRamp returns n premultiplied colors from cold (no energy) to hot.
func EnergyRamp(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		t := float64(i) / float64(max(n-1, 1))
		out[i] = premultiplied(rampAt(t))
	}
	return out
}

func rampAt(t float64) color.RGBA {
	for i := 1; i < len(energyStops); i++ {
		curr := energyStops[i]
		if t <= curr.t {
			prev := energyStops[i-1]
			return lerpRGBA(prev.col, curr.col, (t-prev.t)/(curr.t-prev.t))
		}
	}
	return energyStops[len(energyStops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func premultiplied(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: c.A,
	}
}
