package core

import (
	"testing"

	pcore "godforce-ca/pkg/core"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerGate(t *testing.T) {
	s := NewScheduler(0.001, 0.25)
	assert.True(t, s.ShouldTick(0.1))
	assert.False(t, s.ShouldTick(0.25))
	assert.False(t, s.ShouldTick(0.9))

	never := NewScheduler(0.001, 0)
	always := NewScheduler(0.001, 1)
	rng := pcore.NewRNG(4)
	for i := 0; i < 100; i++ {
		_, tick := never.Advance(rng)
		assert.False(t, tick)
		_, tick = always.Advance(rng)
		assert.True(t, tick)
	}
	assert.InDelta(t, 0.1, never.Elapsed(), 1e-9)
}

func TestSchedulerRate(t *testing.T) {
	s := NewScheduler(0.001, 0.1)
	rng := pcore.NewRNG(9)
	ticks := 0
	const frames = 20000
	for i := 0; i < frames; i++ {
		if _, tick := s.Advance(rng); tick {
			ticks++
		}
	}
	assert.InDelta(t, 0.1, float64(ticks)/frames, 0.02)
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, NewFixedStep(60).Interval(), fs.Interval())
	assert.True(t, fs.ShouldStep())
}

func TestSizeCells(t *testing.T) {
	assert.Equal(t, 36*36*5, Size{W: 36, H: 36, D: 5}.Cells())
	assert.Equal(t, 16, Size{W: 4, H: 4}.Cells())
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	assert.Equal(t, 0.0, c.Clamp(-3))
	assert.Equal(t, 1.0, c.Clamp(3))
	assert.Equal(t, 0.5, c.Clamp(0.5))
}
