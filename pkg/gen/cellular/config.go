package cellular

import "roomgen/pkg/core"

// Config controls the cellular automaton generator.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Iterations is the number of smoothing passes GenerateGrid applies.
	Iterations int
	// NoiseDensity is the probability that a seeded cell starts blocked.
	NoiseDensity float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        64,
		Height:       48,
		Seed:         1337,
		Iterations:   4,
		NoiseDensity: 0.45,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	r := core.NewParamReader(cfg)
	r.Int("w", &c.Width)
	r.Int("h", &c.Height)
	r.Int64("seed", &c.Seed)
	r.Int("iterations", &c.Iterations)
	r.Float("noise_density", &c.NoiseDensity)
	if err := r.Err(); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate rejects configurations the generator cannot run.
func (c Config) Validate() error {
	if err := core.CheckSize(c.Width, c.Height); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return core.Invalidf("iterations must be >= 0, got %d", c.Iterations)
	}
	return core.CheckProbability("noise_density", c.NoiseDensity)
}
