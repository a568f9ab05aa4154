package params

// Tunables are the simulation constants recomputed whenever the record
// changes.
type Tunables struct {
	ColorMixFactor  float64
	ColorSpreadRate float64
	MorphChance     float64
}

var behaviorTable = map[ShapeBehavior]Tunables{
	Frenetic:    {ColorMixFactor: 0.4, ColorSpreadRate: 0.2, MorphChance: 0.003},
	Peaceful:    {ColorMixFactor: 0.1, ColorSpreadRate: 0.05, MorphChance: 0.0005},
	Crystalline: {ColorMixFactor: 0.15, ColorSpreadRate: 0.12, MorphChance: 0.001},
	Standard:    {ColorMixFactor: 0.2, ColorSpreadRate: 0.1, MorphChance: 0.001},
}

// Derive maps a behavior to its tunables scaled by impact. Unknown behaviors
// use the standard row.
func Derive(b ShapeBehavior, impact float64) Tunables {
	base, ok := behaviorTable[b]
	if !ok {
		base = behaviorTable[Standard]
	}
	return Tunables{
		ColorMixFactor:  base.ColorMixFactor * impact,
		ColorSpreadRate: base.ColorSpreadRate * impact,
		MorphChance:     base.MorphChance * impact,
	}
}
