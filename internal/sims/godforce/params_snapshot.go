package godforce

import (
	"strconv"

	"godforce-ca/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	p := w.params
	t := w.tunables
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Grid size", w.cfg.GridSize),
				intParam("depth", "Depth layers", w.cfg.DepthLayers),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("palette", "Palette", w.active),
				uintParam("ticks", "Ticks", w.ticks),
			},
		},
		{
			Name:    "Godforce",
			Summary: p.ColorTheme,
			Params: []core.Parameter{
				floatParam("dominant_hue", "Dominant hue", p.DominantHue),
				stringParam("color_mode", "Color mode", string(p.ColorMode)),
				floatParam("color_spread", "Color spread", p.ColorSpread),
				stringParam("energy_flow", "Energy flow", string(p.EnergyFlow)),
				floatParam("energy_intensity", "Energy intensity", p.EnergyIntensity),
				stringParam("shape_behavior", "Shape behavior", string(p.ShapeBehavior)),
			},
		},
		{
			Name: "Derived",
			Params: []core.Parameter{
				floatParam("color_mix_factor", "Color mix factor", t.ColorMixFactor),
				floatParam("color_spread_rate", "Color spread rate", t.ColorSpreadRate),
				floatParam("morph_chance", "Morph chance", t.MorphChance),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("decay_rate", "Color decay rate", w.cfg.Rules.ColorDecayRate),
				floatParam("transition_speed", "Transition speed", w.cfg.Color.TransitionSpeed),
				floatParam("min_saturation", "Min saturation", w.cfg.Color.MinSaturation),
				floatParam("min_lightness", "Min lightness", w.cfg.Color.MinLightness),
				floatParam("tick_rate", "Tick rate", w.cfg.Schedule.TickRate),
			},
		},
		{
			Name: "Director",
			Params: []core.Parameter{
				floatParam("color_intensity", "Color intensity", w.cfg.Godforce.ColorIntensity),
				floatParam("impact", "Animation impact", w.cfg.Godforce.AnimationImpact),
				floatParam("burst_intensity", "Burst intensity", w.cfg.Godforce.BurstIntensity),
				intParam("burst_count_max", "Max bursts", w.cfg.Godforce.BurstCountMax),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("color_intensity", "Color intensity", 0.5, 0, 100),
		floatControl("impact", "Animation impact", 0.1, 0, 5),
		floatControl("burst_intensity", "Burst intensity", 0.1, 0, 2),
		floatControl("transition_speed", "Transition speed", 0.1, 0, 5),
		floatControl("decay_rate", "Color decay rate", 0.01, 0, 1),
		floatControl("min_saturation", "Min saturation", 0.05, 0, 1),
		floatControl("min_lightness", "Min lightness", 0.05, 0, 1),
		floatControl("tick_rate", "Tick rate", 0.002, 0, 1),
		{Key: "burst_count_max", Label: "Max bursts", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter adjusts a float control. Color floors and the animation
// impact take effect immediately.
func (w *World) SetFloatParameter(key string, value float64) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range w.ParameterControls() {
		if c.Key == key && c.Type == core.ParamTypeFloat {
			ctrl, found = c, true
			break
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "color_intensity":
		w.cfg.Godforce.ColorIntensity = value
	case "impact":
		w.cfg.Godforce.AnimationImpact = value
		w.remap()
	case "burst_intensity":
		w.cfg.Godforce.BurstIntensity = value
	case "transition_speed":
		w.cfg.Color.TransitionSpeed = value
	case "decay_rate":
		w.cfg.Rules.ColorDecayRate = value
	case "min_saturation":
		w.cfg.Color.MinSaturation = value
		w.refreshColorModel()
	case "min_lightness":
		w.cfg.Color.MinLightness = value
		w.refreshColorModel()
	case "tick_rate":
		w.cfg.Schedule.TickRate = value
	}
	return true
}

// SetIntParameter adjusts an integer control.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "burst_count_max" {
		return false
	}
	if value < 1 {
		value = 1
	}
	if value > 10 {
		value = 10
	}
	w.cfg.Godforce.BurstCountMax = value
	return true
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
