package godforce

import (
	_ "embed"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// RulesConfig tunes the transition rule.
type RulesConfig struct {
	ColorDecayRate      float64 `yaml:"color_decay_rate"`
	ShapeRerollChance   float64 `yaml:"shape_reroll_chance"`
	InitialActiveChance float64 `yaml:"initial_active_chance"`
	SeedColorChance     float64 `yaml:"seed_color_chance"`
}

// ColorConfig holds the vibrancy floors and blend speed.
type ColorConfig struct {
	MinSaturation   float64 `yaml:"min_saturation"`
	MinLightness    float64 `yaml:"min_lightness"`
	TransitionSpeed float64 `yaml:"transition_speed"`
}

// GodforceConfig holds the director-side constants.
type GodforceConfig struct {
	// ColorIntensity scales the per-cell, per-tick chance (0.01 × value) of a
	// synthesized color override.
	ColorIntensity     float64 `yaml:"color_intensity"`
	AnimationImpact    float64 `yaml:"animation_impact"`
	SynthMinSaturation float64 `yaml:"synth_min_saturation"`
	SynthMinLightness  float64 `yaml:"synth_min_lightness"`
	BurstIntensity     float64 `yaml:"burst_intensity"`
	BurstRadiusMin     int     `yaml:"burst_radius_min"`
	BurstRadiusMax     int     `yaml:"burst_radius_max"`
	BurstCountMax      int     `yaml:"burst_count_max"`
}

// ScheduleConfig controls simulated time and tick gating.
type ScheduleConfig struct {
	TimeStep float64 `yaml:"time_step"`
	TickRate float64 `yaml:"tick_rate"`
	TPS      int     `yaml:"tps"`
}

// DirectorConfig locates the parameter source.
type DirectorConfig struct {
	Interval  time.Duration `yaml:"interval"`
	Timeout   time.Duration `yaml:"timeout"`
	Endpoint  string        `yaml:"endpoint"`
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"api_key"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Offline   bool          `yaml:"offline"`
}

// DisplayConfig is consumed by the front ends only.
type DisplayConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	FadeDistance      float64 `yaml:"fade_distance"`
	ViewportSpeed     float64 `yaml:"viewport_speed"`
	ViewportRange     float64 `yaml:"viewport_range"`
	CameraDistance    float64 `yaml:"camera_distance"`
	FOVDegrees        float64 `yaml:"fov_degrees"`
	CursorRadius      float64 `yaml:"cursor_radius"`
	CursorDepth       float64 `yaml:"cursor_depth"`
	CursorFollow      float64 `yaml:"cursor_follow"`
	VignetteIntensity float64 `yaml:"vignette_intensity"`
	VignetteRadius    float64 `yaml:"vignette_radius"`
	VignetteFalloff   float64 `yaml:"vignette_falloff"`
}

// Config controls the godforce simulation.
type Config struct {
	GridSize    int    `yaml:"grid_size"`
	DepthLayers int    `yaml:"depth_layers"`
	Seed        int64  `yaml:"seed"`
	Palette     string `yaml:"palette"`

	Rules    RulesConfig    `yaml:"rules"`
	Color    ColorConfig    `yaml:"color"`
	Godforce GodforceConfig `yaml:"godforce"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Director DirectorConfig `yaml:"director"`
	Display  DisplayConfig  `yaml:"display"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(errors.Wrap(err, "godforce: parsing embedded defaults"))
	}
	return c
}

// LoadConfig merges the YAML file at path over the defaults. An empty path
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %s", path)
	}
	return c, nil
}

// WriteYAML writes the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return errors.Errorf("grid_size must be positive, got %d", c.GridSize)
	case c.DepthLayers <= 0:
		return errors.Errorf("depth_layers must be positive, got %d", c.DepthLayers)
	case c.Rules.ColorDecayRate < 0:
		return errors.Errorf("color_decay_rate must not be negative, got %v", c.Rules.ColorDecayRate)
	case c.Schedule.TickRate < 0:
		return errors.Errorf("tick_rate must not be negative, got %v", c.Schedule.TickRate)
	case c.Godforce.BurstRadiusMin <= 0 || c.Godforce.BurstRadiusMax < c.Godforce.BurstRadiusMin:
		return errors.Errorf("burst radius range [%d,%d] invalid", c.Godforce.BurstRadiusMin, c.Godforce.BurstRadiusMax)
	case c.Color.MinSaturation < 0 || c.Color.MinSaturation > 1:
		return errors.Errorf("min_saturation must be within [0,1], got %v", c.Color.MinSaturation)
	case c.Color.MinLightness < 0 || c.Color.MinLightness > 1:
		return errors.Errorf("min_lightness must be within [0,1], got %v", c.Color.MinLightness)
	}
	return nil
}

// FromMap overlays flag-style key/value pairs onto c. Unparseable values are
// ignored.
func FromMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DepthLayers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = v
	}
	floats := map[string]*float64{
		"decay_rate":      &c.Rules.ColorDecayRate,
		"min_saturation":  &c.Color.MinSaturation,
		"min_lightness":   &c.Color.MinLightness,
		"color_intensity": &c.Godforce.ColorIntensity,
		"impact":          &c.Godforce.AnimationImpact,
		"burst_intensity": &c.Godforce.BurstIntensity,
		"tick_rate":       &c.Schedule.TickRate,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Director.Interval = parsed
		}
	}
	if v, ok := cfg["offline"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Director.Offline = parsed
		}
	}
	return c
}
