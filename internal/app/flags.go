package app

import "flag"

// HUDWidth is the pixel width of the parameter panel in the GUI build.
const HUDWidth = 260

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	HUD        bool
	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "beach", Scale: 5, TPS: 60, Seed: 1337, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML config file")
}
