package ui

import (
	"testing"

	"godforce-ca/internal/core"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"
	pkgcore "godforce-ca/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHueStrip(t *testing.T) {
	p := params.Default(pkgcore.NewRNG(1))
	p.ColorMode = palette.Harmony
	strip := HueStrip(p, 32)
	require.Len(t, strip, 32)
	for _, c := range strip {
		assert.Equal(t, uint8(255), c.A)
	}
	assert.NotEqual(t, strip[0], strip[31])

	assert.Nil(t, HueStrip(p, 0))
	assert.Len(t, HueStrip(p, 1), 1)
}

func TestNextValueFloat(t *testing.T) {
	state := &hudControlState{
		control:    core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		floatValue: 0.95,
	}
	v, ok := nextValue(state, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9)

	state.floatValue = 1
	_, ok = nextValue(state, 1)
	assert.False(t, ok)

	v, ok = nextValue(state, -1)
	require.True(t, ok)
	assert.InDelta(t, 0.9, v, 1e-9)

	_, ok = nextValue(state, 0)
	assert.False(t, ok)
	_, ok = nextValue(nil, 1)
	assert.False(t, ok)
}

func TestNextValueInt(t *testing.T) {
	state := &hudControlState{
		control:  core.ParameterControl{Type: core.ParamTypeInt, Min: 1, Max: 10, HasMin: true, HasMax: true},
		intValue: 1,
	}
	_, ok := nextValue(state, -1)
	assert.False(t, ok)
	v, ok := nextValue(state, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.50", formatFloat(core.ParameterControl{}, 0.5))
	assert.Equal(t, "0.500", formatFloat(core.ParameterControl{Step: 0.005}, 0.5))
	assert.Equal(t, "0.50", formatFloat(core.ParameterControl{Step: 0.05}, 0.5))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
}

func TestShortValue(t *testing.T) {
	assert.Equal(t, "0.125", shortValue(core.Parameter{Type: core.ParamTypeFloat, Value: "0.12500000"}))
	assert.Equal(t, "cube", shortValue(core.Parameter{Type: core.ParamTypeString, Value: "cube"}))
	assert.Equal(t, "x", shortValue(core.Parameter{Type: core.ParamTypeFloat, Value: "x"}))
}

func TestEnergyRamp(t *testing.T) {
	ramp := EnergyRamp(5)
	require.Len(t, ramp, 5)
	assert.Equal(t, uint8(150), ramp[0].A)
	assert.Equal(t, uint8(230), ramp[4].A)
	for i := 1; i < len(ramp); i++ {
		assert.GreaterOrEqual(t, ramp[i].A, ramp[i-1].A)
		assert.LessOrEqual(t, ramp[i].R, ramp[i].A)
	}
	assert.Nil(t, EnergyRamp(0))
}
