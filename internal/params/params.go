// Package params defines the godforce parameter record that the director
// publishes and the automaton consumes, plus the tunables derived from it.
package params

import (
	"fmt"
	"math"

	"godforce-ca/internal/palette"
	"godforce-ca/pkg/core"

	"github.com/pkg/errors"
)

// ErrInvalid marks a record with a field outside its documented range.
var ErrInvalid = errors.New("params: invalid record")

// EnergyFlow selects the global energy bias applied every tick.
type EnergyFlow string

const (
	Outward EnergyFlow = "outward"
	Inward  EnergyFlow = "inward"
	Pulsing EnergyFlow = "pulsing"
	Chaotic EnergyFlow = "chaotic"
)

// Flows lists every recognized energy flow.
var Flows = []EnergyFlow{Outward, Inward, Pulsing, Chaotic}

// Valid reports whether f is recognized.
func (f EnergyFlow) Valid() bool {
	switch f {
	case Outward, Inward, Pulsing, Chaotic:
		return true
	}
	return false
}

// ShapeBehavior keys the derived tunables table.
type ShapeBehavior string

const (
	Standard    ShapeBehavior = "standard"
	Frenetic    ShapeBehavior = "frenetic"
	Peaceful    ShapeBehavior = "peaceful"
	Crystalline ShapeBehavior = "crystalline"
)

// Behaviors lists every recognized shape behavior.
var Behaviors = []ShapeBehavior{Standard, Frenetic, Peaceful, Crystalline}

// Valid reports whether b is recognized.
func (b ShapeBehavior) Valid() bool {
	switch b {
	case Standard, Frenetic, Peaceful, Crystalline:
		return true
	}
	return false
}

// Documented ranges.
const (
	MinSpread    = 0.05
	MaxSpread    = 0.5
	MinIntensity = 0.3
	MaxIntensity = 1.0
)

// Params is the live godforce record. It is always replaced as a whole.
type Params struct {
	ColorTheme      string        `json:"colorTheme"`
	DominantHue     float64       `json:"dominantHue"`
	ColorMode       palette.Mode  `json:"colorMode"`
	ColorSpread     float64       `json:"colorSpread"`
	EnergyFlow      EnergyFlow    `json:"energyFlow"`
	EnergyIntensity float64       `json:"energyIntensity"`
	ShapeBehavior   ShapeBehavior `json:"shapeBehavior"`
}

// Default is the record used before the director first reports.
func Default(rng *core.RNG) Params {
	return Params{
		DominantHue:     rng.Float64(),
		ColorMode:       palette.Harmony,
		ColorSpread:     0.2,
		EnergyFlow:      Outward,
		EnergyIntensity: 0.7,
		ShapeBehavior:   Standard,
	}
}

// Random draws every field uniformly within its documented range.
func Random(rng *core.RNG) Params {
	return Params{
		DominantHue:     rng.Float64(),
		ColorMode:       palette.Modes[rng.IntN(len(palette.Modes))],
		ColorSpread:     rng.Between(MinSpread, MaxSpread),
		EnergyFlow:      Flows[rng.IntN(len(Flows))],
		EnergyIntensity: rng.Between(MinIntensity, MaxIntensity),
		ShapeBehavior:   Behaviors[rng.IntN(len(Behaviors))],
	}
}

// Validate checks every field against its range or enum.
func (p Params) Validate() error {
	switch {
	case !finite(p.DominantHue) || p.DominantHue < 0 || p.DominantHue >= 1:
		return errors.Wrapf(ErrInvalid, "dominantHue %v outside [0,1)", p.DominantHue)
	case !p.ColorMode.Valid():
		return errors.Wrapf(ErrInvalid, "colorMode %q", p.ColorMode)
	case !finite(p.ColorSpread) || p.ColorSpread < MinSpread || p.ColorSpread > MaxSpread:
		return errors.Wrapf(ErrInvalid, "colorSpread %v outside [%v,%v]", p.ColorSpread, MinSpread, MaxSpread)
	case !p.EnergyFlow.Valid():
		return errors.Wrapf(ErrInvalid, "energyFlow %q", p.EnergyFlow)
	case !finite(p.EnergyIntensity) || p.EnergyIntensity < MinIntensity || p.EnergyIntensity > MaxIntensity:
		return errors.Wrapf(ErrInvalid, "energyIntensity %v outside [%v,%v]", p.EnergyIntensity, MinIntensity, MaxIntensity)
	case !p.ShapeBehavior.Valid():
		return errors.Wrapf(ErrInvalid, "shapeBehavior %q", p.ShapeBehavior)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("theme=%q hue=%.3f mode=%s spread=%.2f flow=%s intensity=%.2f behavior=%s",
		p.ColorTheme, p.DominantHue, p.ColorMode, p.ColorSpread, p.EnergyFlow, p.EnergyIntensity, p.ShapeBehavior)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
