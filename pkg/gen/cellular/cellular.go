// Package cellular smooths random noise into cave-like layouts with a
// majority-rule cellular automaton.
package cellular

import "roomgen/pkg/core"

// Generator implements core.Generator using noise seeding followed by
// repeated Moore-neighbourhood smoothing passes.
type Generator struct {
	cfg Config
	rng core.Random

	cur *core.Grid
	nxt *core.Grid

	generated bool
	steps     int
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
		cfg: cfg,
		rng: rng,
		cur: core.NewGrid(cfg.Width, cfg.Height, core.Open),
		nxt: core.NewGrid(cfg.Width, cfg.Height, core.Open),
	}, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string { return "cellular" }

// Size returns the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// GenerateGrid seeds fresh noise and applies the configured number of passes.
func (g *Generator) GenerateGrid() *core.Grid {
	g.seedNoise()
	g.steps = 0
	for i := 0; i < g.cfg.Iterations; i++ {
		g.step()
	}
	g.generated = true
	return g.cur.Clone()
}

// NextIteration applies exactly one more smoothing pass to the current grid.
func (g *Generator) NextIteration() *core.Grid {
	if !g.generated {
		return g.GenerateGrid()
	}
	g.step()
	return g.cur.Clone()
}

// Stats reports how many passes have been applied since the last reset.
func (g *Generator) Stats() core.Stats {
	open := g.cur.Count(core.Open)
	return core.Stats{
		Iterations:    g.steps,
		OpenCells:     open,
		OpenFraction:  float64(open) / float64(g.cfg.Width*g.cfg.Height),
		TargetReached: g.generated,
	}
}

// seedNoise marks each cell blocked with probability NoiseDensity.
func (g *Generator) seedNoise() {
	cells := g.cur.Cells()
	for i := range cells {
		if core.Chance(g.rng, g.cfg.NoiseDensity) {
			cells[i] = core.Blocked
		} else {
			cells[i] = core.Open
		}
	}
}

// step computes the next generation from a frozen copy of the current one.
// A cell becomes blocked when more than four neighbours are blocked or when
// any neighbour lies outside the grid.
func (g *Generator) step() {
	w, h := g.cfg.Width, g.cfg.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			blocked := 0
			border := false
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						border = true
						continue
					}
					if g.cur.At(nx, ny) == core.Blocked {
						blocked++
					}
				}
			}
			if blocked > 4 || border {
				g.nxt.Set(x, y, core.Blocked)
			} else {
				g.nxt.Set(x, y, core.Open)
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.steps++
}

func init() {
	core.Register("cellular", func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
