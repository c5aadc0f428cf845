package beach

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunables of the coastline engine. The wave fields may be
// written between frames by the UI layer; everything else is read at Reset.
type Params struct {
	WaveFastAmp    float64 `yaml:"wave_fast_amp"`
	WaveFastFreq   float64 `yaml:"wave_fast_freq"`
	WaveSlowAmp    float64 `yaml:"wave_slow_amp"`
	WaveSlowPeriod float64 `yaml:"wave_slow_period"`

	PickupProbMin  float64 `yaml:"pickup_prob_min"`
	PickupProbMax  float64 `yaml:"pickup_prob_max"`
	DepositProbMin float64 `yaml:"deposit_prob_min"`
	DepositProbMax float64 `yaml:"deposit_prob_max"`
	ScanRadius     int     `yaml:"scan_radius"`

	BumpCount  int     `yaml:"bump_count"`
	BumpHeight float64 `yaml:"bump_height"`

	FillTopFrac    float64 `yaml:"fill_top_frac"`
	ShoreLeftFrac  float64 `yaml:"shore_left_frac"`
	ShoreRightFrac float64 `yaml:"shore_right_frac"`
}

// Config controls grid geometry and determinism. CellSize is in pixels; the
// continuous world spans Cols*CellSize by Rows*CellSize.
type Config struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration: a 1200x800 pixel world at
// five pixels per cell with the original wave and erosion tuning.
func DefaultConfig() Config {
	return Config{
		Cols:     240,
		Rows:     160,
		CellSize: 5,
		Seed:     1337,
		Params: Params{
			WaveFastAmp:    40,
			WaveFastFreq:   0.25,
			WaveSlowAmp:    120,
			WaveSlowPeriod: 10,

			PickupProbMin:  0.003,
			PickupProbMax:  0.005,
			DepositProbMin: 0.003,
			DepositProbMax: 0.005,
			ScanRadius:     2,

			BumpCount:  40,
			BumpHeight: 3,

			FillTopFrac:    0.35,
			ShoreLeftFrac:  0.33,
			ShoreRightFrac: 0.94,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fast_amp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WaveFastAmp = parsed
		}
	}
	if v, ok := cfg["fast_freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WaveFastFreq = parsed
		}
	}
	if v, ok := cfg["slow_amp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WaveSlowAmp = parsed
		}
	}
	if v, ok := cfg["slow_period"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WaveSlowPeriod = parsed
		}
	}
	if v, ok := cfg["scan_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ScanRadius = parsed
		}
	}
	if v, ok := cfg["bump_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.BumpCount = parsed
		}
	}
	if v, ok := cfg["bump_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BumpHeight = parsed
		}
	}
	if v, ok := cfg["fill_top"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FillTopFrac = parsed
		}
	}
	return c
}

// LoadFile reads a yaml configuration file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read beach config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse beach config: %w", err)
	}
	return cfg, nil
}
