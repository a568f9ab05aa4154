package palette

import (
	"math"
	"testing"

	"godforce-ca/pkg/core"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVibrancy = Vibrancy{MinSaturation: 0.5, MinLightness: 0.3}

func TestForTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{"neon jungle", Neon},
		{"Sunset Blaze", Sunset},
		{"deep ocean dream", Ocean},
		{"enchanted forest", Forest},
		{"cosmic rainbow", Candy},
		{"", Candy},
		// first keyword in the fixed order wins, not first in the text
		{"ocean of neon", Neon},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ForTheme(tc.theme), "theme %q", tc.theme)
	}
}

func TestDefaultBook(t *testing.T) {
	b := Default()
	assert.Equal(t, []string{Neon, Sunset, Ocean, Forest, Candy}, b.Names())
	for _, name := range b.Names() {
		assert.Len(t, b.Lookup(name).Colors, 6, name)
	}
	assert.Equal(t, Candy, b.Lookup("missing").Name)
}

func TestRandomDrawsFromPalette(t *testing.T) {
	b := Default()
	rng := core.NewRNG(3)
	neon := b.Lookup(Neon).Colors
	for i := 0; i < 200; i++ {
		c := b.Random(Neon, rng)
		assert.Contains(t, neon, c)
	}
}

func TestParsePaletteRejectsBadHex(t *testing.T) {
	_, err := ParsePalette("bad", "#FF00FF", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette bad")

	_, err = ParsePalette("empty")
	require.Error(t, err)
}

func TestEnforceRaisesFloors(t *testing.T) {
	grey := colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	out := testVibrancy.Enforce(grey)
	_, s, l := out.Hsl()
	assert.InDelta(t, 0.5, s, 1e-6)
	assert.InDelta(t, 0.3, l, 1e-6)

	vivid := colorful.Hsl(200, 0.9, 0.6)
	h0, s0, l0 := vivid.Hsl()
	h1, s1, l1 := testVibrancy.Enforce(vivid).Hsl()
	assert.InDelta(t, h0, h1, 1e-6)
	assert.InDelta(t, s0, s1, 1e-6)
	assert.InDelta(t, l0, l1, 1e-6)
}

func TestEnforceIdempotent(t *testing.T) {
	rng := core.NewRNG(11)
	for i := 0; i < 500; i++ {
		c := colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		once := testVibrancy.Enforce(c)
		twice := testVibrancy.Enforce(once)
		assert.InDelta(t, once.R, twice.R, 1e-9)
		assert.InDelta(t, once.G, twice.G, 1e-9)
		assert.InDelta(t, once.B, twice.B, 1e-9)
		assert.True(t, testVibrancy.Satisfied(once, 1e-9))
	}
}

func TestSynthModes(t *testing.T) {
	s := Synth{MinSaturation: 0.9, MinLightness: 0.5}
	rng := core.NewRNG(5)
	hueDist := func(a, b float64) float64 {
		d := math.Abs(a - b)
		return math.Min(d, 1-d)
	}
	for i := 0; i < 300; i++ {
		c := s.Color(0.95, Harmony, 0.1, rng)
		_, sat, l := c.Hsl()
		assert.GreaterOrEqual(t, sat, 0.9-1e-6)
		assert.GreaterOrEqual(t, l, 0.5-1e-6)
		if l < 0.999 {
			assert.LessOrEqual(t, hueDist(Hue(c), 0.95), 0.1+1e-6)
		}

		c = s.Color(0.2, Contrast, 0.05, rng)
		if _, _, l := c.Hsl(); l < 0.999 {
			assert.LessOrEqual(t, hueDist(Hue(c), 0.7), 0.05+1e-6)
		}

		c = s.Color(0.0, Triad, 0.3, rng)
		if _, _, l := c.Hsl(); l < 0.999 {
			h := Hue(c)
			near := math.Min(hueDist(h, 0), math.Min(hueDist(h, 1.0/3), hueDist(h, 2.0/3)))
			assert.LessOrEqual(t, near, 0.05+1e-6)
		}

		c = s.Color(0.5, Mode("unknown"), 0.1, rng)
		assert.True(t, c.IsValid())
	}
}

func TestWrapUnit(t *testing.T) {
	assert.InDelta(t, 0.25, WrapUnit(1.25), 1e-12)
	assert.InDelta(t, 0.75, WrapUnit(-0.25), 1e-12)
	assert.Equal(t, 0.0, WrapUnit(1))
	assert.Equal(t, 0.0, WrapUnit(math.NaN()))
}

func TestBlendClampsFactor(t *testing.T) {
	a := colorful.Color{R: 1, G: 0, B: 0}
	b := colorful.Color{R: 0, G: 0, B: 1}

	assert.Equal(t, b, Blend(a, b, 10, 1.9))
	assert.Equal(t, a, Blend(a, b, -1, 1.9))

	mid := Blend(a, b, 0.5, 2)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)
}
