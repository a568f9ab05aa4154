package app

import (
	"flag"
	"log"
	"net/http"
	"os"

	"godforce-ca/internal/director"
	"godforce-ca/internal/sims/godforce"
)

// Flags represents the command-line parameters shared by the front ends.
type Flags struct {
	Config   string
	Seed     int64
	Size     int
	Depth    int
	TPS      int
	HUDWidth int
	Offline  bool
	Verbose  bool
}

// NewFlags returns Flags populated with defaults. Zero values defer to the
// configuration file.
func NewFlags() *Flags {
	return &Flags{HUDWidth: 260}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "YAML file merged over the built-in defaults")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.IntVar(&f.Size, "size", f.Size, "grid edge length")
	fs.IntVar(&f.Depth, "depth", f.Depth, "number of depth layers")
	fs.IntVar(&f.TPS, "tps", f.TPS, "frames per second")
	fs.IntVar(&f.HUDWidth, "hud", f.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&f.Offline, "offline", f.Offline, "never contact the parameter source")
	fs.BoolVar(&f.Verbose, "v", f.Verbose, "log director activity")
}

// Load reads the configuration and applies flag overrides.
func (f *Flags) Load() (godforce.Config, error) {
	cfg, err := godforce.LoadConfig(f.Config)
	if err != nil {
		return godforce.Config{}, err
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.Size > 0 {
		cfg.GridSize = f.Size
	}
	if f.Depth > 0 {
		cfg.DepthLayers = f.Depth
	}
	if f.TPS > 0 {
		cfg.Schedule.TPS = f.TPS
	}
	if f.Offline {
		cfg.Director.Offline = true
	}
	return cfg, cfg.Validate()
}

// Logger returns the director logger: stderr when verbose, otherwise nil so
// the director discards its output.
func (f *Flags) Logger() *log.Logger {
	if !f.Verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// NewSource builds the parameter source described by cfg. Offline mode, or a
// missing API key, yields director.Offline so every cycle falls back.
func NewSource(cfg godforce.DirectorConfig) director.Source {
	if cfg.Offline {
		return director.Offline
	}
	key := cfg.APIKey
	if key == "" && cfg.APIKeyEnv != "" {
		key = os.Getenv(cfg.APIKeyEnv)
	}
	if key == "" {
		return director.Offline
	}
	return &director.ChatSource{
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		APIKey:   key,
		Client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// NewDirector builds a Director for cfg.
func NewDirector(cfg godforce.Config, logger *log.Logger) *director.Director {
	return director.New(NewSource(cfg.Director), director.Options{
		Interval: cfg.Director.Interval,
		Timeout:  cfg.Director.Timeout,
		Logger:   logger,
		Seed:     cfg.Seed,
	})
}
