package godforce

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 36, cfg.GridSize)
	assert.Equal(t, 5, cfg.DepthLayers)
	assert.Equal(t, 30*time.Second, cfg.Director.Interval)
	assert.Equal(t, 0.014, cfg.Schedule.TickRate)
	assert.Equal(t, "GODFORCE_API_KEY", cfg.Director.APIKeyEnv)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "godforce.yaml")
	data := "grid_size: 12\ncolor:\n  min_saturation: 0.7\ndirector:\n  interval: 5s\n  offline: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GridSize)
	assert.Equal(t, 5, cfg.DepthLayers)
	assert.Equal(t, 0.7, cfg.Color.MinSaturation)
	assert.Equal(t, 0.3, cfg.Color.MinLightness)
	assert.Equal(t, 5*time.Second, cfg.Director.Interval)
	assert.True(t, cfg.Director.Offline)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size: [oops"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteYAMLLoadsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 20
	cfg.Director.Timeout = 3 * time.Second
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero size":      func(c *Config) { c.GridSize = 0 },
		"zero depth":     func(c *Config) { c.DepthLayers = 0 },
		"negative decay": func(c *Config) { c.Rules.ColorDecayRate = -1 },
		"radius order":   func(c *Config) { c.Godforce.BurstRadiusMax = 1 },
		"saturation":     func(c *Config) { c.Color.MinSaturation = 1.5 },
		"lightness":      func(c *Config) { c.Color.MinLightness = -0.1 },
	}
	for name, mutate := range tests {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(DefaultConfig(), map[string]string{
		"size":            "16",
		"depth":           "4",
		"seed":            "99",
		"palette":         "ocean",
		"decay_rate":      "0.2",
		"color_intensity": "bad",
		"interval":        "45s",
		"offline":         "true",
	})
	assert.Equal(t, 16, cfg.GridSize)
	assert.Equal(t, 4, cfg.DepthLayers)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "ocean", cfg.Palette)
	assert.Equal(t, 0.2, cfg.Rules.ColorDecayRate)
	assert.Equal(t, DefaultConfig().Godforce.ColorIntensity, cfg.Godforce.ColorIntensity)
	assert.Equal(t, 45*time.Second, cfg.Director.Interval)
	assert.True(t, cfg.Director.Offline)

	assert.Equal(t, DefaultConfig(), FromMap(DefaultConfig(), nil))
}
