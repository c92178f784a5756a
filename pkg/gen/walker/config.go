package walker

import "roomgen/pkg/core"

// Config controls the agent walk generator.
type Config struct {
	Width  int
	Height int

	Seed int64

	MaxAgents             int
	TargetOpenFraction    float64
	ChangeDirectionChance float64
	SpawnChance           float64
	PruneChance           float64

	AddBorder bool
	Despeckle bool

	// MaxIterations caps the carve loop when the target cannot be reached.
	MaxIterations int

	SpawnStrategy SpawnStrategy
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:                 64,
		Height:                48,
		Seed:                  1337,
		MaxAgents:             20,
		TargetOpenFraction:    0.45,
		ChangeDirectionChance: 0.6,
		SpawnChance:           0.15,
		PruneChance:           0.08,
		AddBorder:             true,
		Despeckle:             false,
		MaxIterations:         100000,
		SpawnStrategy:         SpawnCorners,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	r := core.NewParamReader(cfg)
	r.Int("w", &c.Width)
	r.Int("h", &c.Height)
	r.Int64("seed", &c.Seed)
	r.Int("max_agents", &c.MaxAgents)
	r.Float("target_open_fraction", &c.TargetOpenFraction)
	r.Float("change_direction_chance", &c.ChangeDirectionChance)
	r.Float("spawn_chance", &c.SpawnChance)
	r.Float("prune_chance", &c.PruneChance)
	r.Bool("add_border", &c.AddBorder)
	r.Bool("despeckle", &c.Despeckle)
	r.Int("max_iterations", &c.MaxIterations)
	strategy := string(c.SpawnStrategy)
	r.Text("spawn_strategy", &strategy)
	c.SpawnStrategy = SpawnStrategy(strategy)
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
	if c.MaxAgents < 1 {
		return core.Invalidf("max_agents must be >= 1, got %d", c.MaxAgents)
	}
	if !(c.TargetOpenFraction > 0 && c.TargetOpenFraction <= 1) {
		return core.Invalidf("target_open_fraction must be in (0,1], got %v", c.TargetOpenFraction)
	}
	for _, p := range []struct {
		key string
		val float64
	}{
		{"change_direction_chance", c.ChangeDirectionChance},
		{"spawn_chance", c.SpawnChance},
		{"prune_chance", c.PruneChance},
	} {
		if err := core.CheckProbability(p.key, p.val); err != nil {
			return err
		}
	}
	if c.MaxIterations < 1 {
		return core.Invalidf("max_iterations must be >= 1, got %d", c.MaxIterations)
	}
	if !c.SpawnStrategy.valid() {
		return core.Invalidf("unknown spawn_strategy %q", c.SpawnStrategy)
	}
	return nil
}
