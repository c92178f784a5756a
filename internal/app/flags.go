package app

import (
	"flag"

	"roomgen/internal/config"
)

// DefaultGenerator runs when neither -gen nor the settings file names one.
const DefaultGenerator = "cellular"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Generator string
	Scale     int
	Rate      int
	Seed      int64
	File      string
	HUDWidth  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, Rate: 8, Seed: 42, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Generator, "gen", c.Generator, "generator to run (default: the config file's, else "+DefaultGenerator+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "autoplay iterations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first generation")
	fs.StringVar(&c.File, "config", c.File, "optional YAML settings file")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// Request describes the settings for one build of the generator.
func (c *Config) Request(seed int64, overrides []string) config.Request {
	return config.Request{
		Generator: c.Generator,
		File:      c.File,
		Overrides: overrides,
		Seed:      &seed,
		Fallback:  DefaultGenerator,
	}
}
