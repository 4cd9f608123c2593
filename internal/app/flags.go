package app

import (
	"flag"
	"fmt"

	"eca/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
	Options  string
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "elementary", Scale: 3, TPS: 60, Rate: 30, HUDWidth: 220, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Options, "options", c.Options, "YAML file with sim options")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// Build resolves the sim factory and options and constructs the simulation.
// An options file may name the sim; the -sim flag wins when both are given.
func (c *Config) Build(fs *flag.FlagSet) (core.Sim, error) {
	name := c.Sim
	var opts map[string]string
	if c.Options != "" {
		f, err := core.LoadOptions(c.Options)
		if err != nil {
			return nil, err
		}
		opts = f.StringMap()
		if f.Sim != "" && !flagSet(fs, "sim") {
			name = f.Sim
		}
	}
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, core.SimNames())
	}
	return factory(opts), nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
