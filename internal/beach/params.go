package beach

import (
	"strconv"

	"coastline/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("cols", "Columns", w.cfg.Cols),
				intParam("rows", "Rows", w.cfg.Rows),
				floatParam("cell", "Cell size", w.cfg.CellSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Wave",
			Params: []core.Parameter{
				floatParam("fast_amp", "Fast amplitude", params.WaveFastAmp),
				floatParam("fast_freq", "Fast frequency", params.WaveFastFreq),
				floatParam("slow_amp", "Slow amplitude", params.WaveSlowAmp),
				floatParam("slow_period", "Slow period", params.WaveSlowPeriod),
			},
		},
		{
			Name: "Erosion",
			Params: []core.Parameter{
				floatParam("pickup_prob_min", "Pickup prob min", params.PickupProbMin),
				floatParam("pickup_prob_max", "Pickup prob max", params.PickupProbMax),
				floatParam("deposit_prob_min", "Deposit prob min", params.DepositProbMin),
				floatParam("deposit_prob_max", "Deposit prob max", params.DepositProbMax),
				intParam("scan_radius", "Scan radius", params.ScanRadius),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("bump_count", "Bump count", params.BumpCount),
				floatParam("bump_height", "Bump height", params.BumpHeight),
				floatParam("fill_top", "Water fill top", params.FillTopFrac),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				intParam("particles", "Particles", len(w.particles)),
				intParam("sand_cells", "Sand cells", w.grid.OccupiedCells()),
				floatParam("elapsed", "Elapsed", w.elapsed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables with the same ranges the
// sliders of the original tool allowed.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("fast_amp", "Fast amplitude", 5, 10, 100),
		floatControl("fast_freq", "Fast frequency", 0.05, 0.05, 1),
		floatControl("slow_amp", "Slow amplitude", 10, 20, 200),
		floatControl("slow_period", "Slow period", 5, 5, 60),
		{
			Key:    "scan_radius",
			Label:  "Scan radius",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    1,
			Max:    4,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter adjusts a live wave tunable, clamped to its control range.
// Changing the slow amplitude takes effect on the next reset because the wall
// base position depends on it.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fast_amp":
		w.cfg.Params.WaveFastAmp = clampFloat(value, 10, 100)
	case "fast_freq":
		w.cfg.Params.WaveFastFreq = clampFloat(value, 0.05, 1)
	case "slow_amp":
		w.cfg.Params.WaveSlowAmp = clampFloat(value, 20, 200)
	case "slow_period":
		w.cfg.Params.WaveSlowPeriod = clampFloat(value, 5, 60)
	default:
		return false
	}
	return true
}

// SetIntParameter adjusts a live integer tunable, clamped to its control range.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "scan_radius":
		w.cfg.Params.ScanRadius = clampInt(value, 1, 4)
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    min,
		Max:    max,
		HasMin: true,
		HasMax: true,
	}
}
