// Package walker carves layouts out of solid rock with a population of random
// walking agents (a "drunkard's walk").
package walker

import "roomgen/pkg/core"

// StepInfo is handed to the observer after every carve loop iteration.
// Grid and Agents are copies.
type StepInfo struct {
	Iteration int
	OpenCells int
	Grid      *core.Grid
	Agents    []Agent
}

// Generator implements core.Generator by letting agents open cells until the
// target open fraction is reached or the iteration cap is hit.
type Generator struct {
	cfg Config
	rng core.Random

	grid   *core.Grid
	agents []Agent
	quads  [4]quadrant

	cornerIndex int
	openCells   int
	iterations  int
	reached     bool
	generated   bool

	observer func(StepInfo)
}

// New returns a generator seeded from cfg.Seed.
func New(cfg Config) (*Generator, error) {
	return NewWithRandom(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRandom returns a generator drawing from rng. A nil rng falls back to
// a stream seeded from cfg.Seed.
func NewWithRandom(cfg Config, rng core.Random) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	return &Generator{
		cfg:   cfg,
		rng:   rng,
		grid:  core.NewGrid(cfg.Width, cfg.Height, core.Blocked),
		quads: quadrants(cfg.Width, cfg.Height),
	}, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string { return "walker" }

// Size returns the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// SetObserver registers fn to be called after each carve loop iteration.
// Pass nil to remove it.
func (g *Generator) SetObserver(fn func(StepInfo)) { g.observer = fn }

// Agents returns a copy of the current agent population.
func (g *Generator) Agents() []Agent {
	return append([]Agent(nil), g.agents...)
}

// GenerateGrid resets the grid and agents and runs the carve loop to
// completion, then applies the post-processing passes.
func (g *Generator) GenerateGrid() *core.Grid {
	g.reset()
	g.run()
	if g.cfg.Despeckle {
		despeckle(g.grid)
	}
	if g.cfg.AddBorder {
		addBorder(g.grid)
	}
	g.generated = true
	return g.grid.Clone()
}

// NextIteration generates on first use. Afterwards the carve loop has already
// run to completion, so it returns the finished grid unchanged.
func (g *Generator) NextIteration() *core.Grid {
	if !g.generated {
		return g.GenerateGrid()
	}
	return g.grid.Clone()
}

// Stats reports the outcome of the last run.
func (g *Generator) Stats() core.Stats {
	open := g.grid.Count(core.Open)
	return core.Stats{
		Iterations:    g.iterations,
		OpenCells:     open,
		OpenFraction:  float64(open) / float64(g.cfg.Width*g.cfg.Height),
		Agents:        len(g.agents),
		TargetReached: g.reached,
	}
}

func (g *Generator) reset() {
	g.grid.Fill(core.Blocked)
	g.agents = g.agents[:0]
	g.agents = append(g.agents, Agent{
		X:   g.cfg.Width / 2,
		Y:   g.cfg.Height / 2,
		Dir: RandomDirection(g.rng),
	})
	g.cornerIndex = 0
	g.openCells = 0
	g.iterations = 0
	g.reached = false
}

func (g *Generator) run() {
	total := float64(g.cfg.Width * g.cfg.Height)
	for g.iterations < g.cfg.MaxIterations {
		g.carve()
		g.advance()
		if core.Chance(g.rng, g.cfg.PruneChance) && len(g.agents) > 1 {
			g.agents = append(g.agents[:0], g.agents[1:]...)
		}
		if core.Chance(g.rng, g.cfg.SpawnChance) && len(g.agents) < g.cfg.MaxAgents {
			g.spawn()
		}
		g.iterations++

		if g.observer != nil {
			snap := g.grid.Clone()
			g.observer(StepInfo{
				Iteration: g.iterations,
				OpenCells: snap.Count(core.Open),
				Grid:      snap,
				Agents:    g.Agents(),
			})
		}
		if float64(g.openCells)/total >= g.cfg.TargetOpenFraction {
			g.reached = true
			return
		}
	}
}

func (g *Generator) carve() {
	for _, a := range g.agents {
		if g.grid.At(a.X, a.Y) == core.Blocked {
			g.grid.Set(a.X, a.Y, core.Open)
			g.openCells++
		}
	}
}

func (g *Generator) advance() {
	for i := range g.agents {
		a := &g.agents[i]
		a.advance(g.cfg.Width, g.cfg.Height)
		if core.Chance(g.rng, g.cfg.ChangeDirectionChance) {
			a.Dir = RandomDirection(g.rng)
		}
	}
}

func init() {
	core.Register("walker", func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
