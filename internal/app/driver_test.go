package app

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"godforce-ca/internal/director"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"
	"godforce-ca/internal/sims/godforce"
	pcore "godforce-ca/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *godforce.World {
	t.Helper()
	cfg := godforce.DefaultConfig()
	cfg.GridSize = 6
	cfg.DepthLayers = 2
	cfg.Seed = 11
	w, err := godforce.New(cfg)
	require.NoError(t, err)
	return w
}

func TestDriverAdvancesTime(t *testing.T) {
	w := newTestWorld(t)
	d := NewDriver(w, nil, 5)
	for i := 0; i < 10; i++ {
		d.Frame()
	}
	assert.InDelta(t, 10*w.Config().Schedule.TimeStep, d.Elapsed(), 1e-12)
	assert.Equal(t, d.Elapsed(), w.Elapsed())
}

func TestDriverTickGate(t *testing.T) {
	w := newTestWorld(t)
	require.True(t, w.SetFloatParameter("tick_rate", 1))
	d := NewDriver(w, nil, 5)
	assert.True(t, d.Frame())
	assert.Equal(t, uint64(1), w.Ticks())

	d.SetPaused(true)
	assert.False(t, d.Frame())
	d.StepOnce()
	assert.True(t, d.Frame())
	assert.Equal(t, uint64(2), w.Ticks())

	require.True(t, w.SetFloatParameter("tick_rate", 0))
	d.SetPaused(false)
	for i := 0; i < 50; i++ {
		assert.False(t, d.Frame())
	}
}

func TestDriverAppliesOneUpdatePerFrame(t *testing.T) {
	w := newTestWorld(t)
	updates := make(chan director.Update, 2)
	fb := params.Random(pcore.NewRNG(1))
	updates <- director.Update{Params: fb, Fallback: true}
	ok := fb
	ok.ShapeBehavior = params.Crystalline
	updates <- director.Update{Params: ok, Palette: palette.Forest}

	d := NewDriver(w, updates, 5)
	d.Frame()
	assert.Equal(t, fb, w.Params())
	_, n := d.LastUpdate()
	assert.Equal(t, 1, n)

	d.Frame()
	assert.Equal(t, ok, w.Params())
	assert.Equal(t, palette.Forest, w.Palette())
	last, n := d.LastUpdate()
	assert.Equal(t, 2, n)
	assert.False(t, last.Fallback)

	d.Frame()
	_, n = d.LastUpdate()
	assert.Equal(t, 2, n)
}

func TestDriverWithOfflineDirector(t *testing.T) {
	w := newTestWorld(t)
	dir := director.New(director.Offline, director.Options{Seed: 2})
	d := NewDriver(w, dir.Updates(), 5)
	require.True(t, dir.Trigger(context.Background()))
	dir.Wait()

	d.Frame()
	u, n := d.LastUpdate()
	assert.Equal(t, 1, n)
	assert.True(t, u.Fallback)
	assert.Equal(t, u.Params, w.Params())
}

func TestFlagsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size: 10\ndirector:\n  interval: 2s\n"), 0o644))

	f := NewFlags()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-depth", "3", "-seed", "7", "-offline"}))

	cfg, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GridSize)
	assert.Equal(t, 3, cfg.DepthLayers)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Director.Offline)
	assert.Equal(t, 2*time.Second, cfg.Director.Interval)
	assert.Nil(t, f.Logger())
}

func TestNewSource(t *testing.T) {
	cfg := godforce.DefaultConfig().Director
	cfg.Offline = true
	_, err := NewSource(cfg).Fetch(context.Background())
	assert.Equal(t, director.ErrOffline, err)

	cfg.Offline = false
	cfg.APIKey = ""
	cfg.APIKeyEnv = "GODFORCE_TEST_KEY_UNSET"
	_, err = NewSource(cfg).Fetch(context.Background())
	assert.Equal(t, director.ErrOffline, err)

	t.Setenv("GODFORCE_TEST_KEY", "k")
	cfg.APIKeyEnv = "GODFORCE_TEST_KEY"
	src, ok := NewSource(cfg).(*director.ChatSource)
	require.True(t, ok)
	assert.Equal(t, "k", src.APIKey)
	assert.Equal(t, cfg.Endpoint, src.Endpoint)
}
