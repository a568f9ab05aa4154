package params

import (
	"math"
	"testing"

	"godforce-ca/internal/palette"
	"godforce-ca/pkg/core"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRandomWithinRanges(t *testing.T) {
	rng := core.NewRNG(1)
	for i := 0; i < 1000; i++ {
		p := Random(rng)
		assert.NoError(t, p.Validate(), p.String())
		assert.GreaterOrEqual(t, p.DominantHue, 0.0)
		assert.Less(t, p.DominantHue, 1.0)
		assert.GreaterOrEqual(t, p.EnergyIntensity, 0.3)
		assert.LessOrEqual(t, p.EnergyIntensity, 1.0)
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default(core.NewRNG(2)).Validate())
}

func TestValidateRejects(t *testing.T) {
	good := Params{
		DominantHue:     0.4,
		ColorMode:       palette.Triad,
		ColorSpread:     0.2,
		EnergyFlow:      Pulsing,
		EnergyIntensity: 0.5,
		ShapeBehavior:   Peaceful,
	}
	assert.NoError(t, good.Validate())

	mutations := map[string]func(*Params){
		"hue one":        func(p *Params) { p.DominantHue = 1 },
		"hue negative":   func(p *Params) { p.DominantHue = -0.1 },
		"hue nan":        func(p *Params) { p.DominantHue = math.NaN() },
		"mode":           func(p *Params) { p.ColorMode = "plaid" },
		"spread low":     func(p *Params) { p.ColorSpread = 0.01 },
		"spread inf":     func(p *Params) { p.ColorSpread = math.Inf(1) },
		"flow":           func(p *Params) { p.EnergyFlow = "sideways" },
		"intensity high": func(p *Params) { p.EnergyIntensity = 1.5 },
		"behavior":       func(p *Params) { p.ShapeBehavior = "" },
	}
	for name, mutate := range mutations {
		p := good
		mutate(&p)
		err := p.Validate()
		if assert.Error(t, err, name) {
			assert.Equal(t, ErrInvalid, errors.Cause(err), name)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	a := Derive(Standard, 1.5)
	b := Derive(Standard, 1.5)
	assert.Equal(t, a, b)
	assert.InDelta(t, 0.3, a.ColorMixFactor, 1e-12)
	assert.InDelta(t, 0.15, a.ColorSpreadRate, 1e-12)
	assert.InDelta(t, 0.0015, a.MorphChance, 1e-12)

	f := Derive(Frenetic, 1)
	assert.Equal(t, Tunables{ColorMixFactor: 0.4, ColorSpreadRate: 0.2, MorphChance: 0.003}, f)

	assert.Equal(t, Derive(Standard, 2), Derive("mystery", 2))
}
