package walker

import (
	"testing"

	"roomgen/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, mutate func(*Config)) *Generator {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = 7
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func TestGridDimensions(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 2, H: 9}, {W: 17, H: 3}, {W: 50, H: 50}} {
		g := newGenerator(t, func(c *Config) {
			c.Width, c.Height = size.W, size.H
			c.MaxIterations = 5000
		})
		grid := g.GenerateGrid()
		require.Equal(t, size.W, grid.W)
		require.Equal(t, size.H, grid.H)
		require.Len(t, grid.Cells(), size.W*size.H)
	}
}

func TestSingleAgentStopsAfterFirstCarve(t *testing.T) {
	g := newGenerator(t, func(c *Config) {
		c.Width, c.Height = 10, 10
		c.TargetOpenFraction = 0.01
		c.MaxAgents = 1
		c.SpawnChance = 0
		c.PruneChance = 0
	})
	grid := g.GenerateGrid()

	require.Equal(t, 1, grid.Count(core.Open))
	assert.Equal(t, core.Open, grid.At(5, 5))
	stats := g.Stats()
	assert.Equal(t, 1, stats.Iterations)
	assert.True(t, stats.TargetReached)
}

func TestOpenCountNeverDecreases(t *testing.T) {
	g := newGenerator(t, func(c *Config) { c.SpawnChance = 0.3; c.PruneChance = 0.1 })
	var prev *core.Grid
	calls := 0
	g.SetObserver(func(s StepInfo) {
		calls++
		require.Equal(t, s.Grid.Count(core.Open), s.OpenCells)
		if prev != nil {
			require.GreaterOrEqual(t, s.OpenCells, prev.Count(core.Open), "open count dropped at iteration %d", s.Iteration)
			for i, c := range prev.Cells() {
				if c == core.Open {
					require.Equalf(t, core.Open, s.Grid.Cells()[i], "cell %d closed again at iteration %d", i, s.Iteration)
				}
			}
		}
		prev = s.Grid
	})
	g.GenerateGrid()
	assert.Equal(t, g.Stats().Iterations, calls)
	assert.True(t, g.Stats().TargetReached)
}

func TestAgentsStayInBoundsAndWithinPopulationLimits(t *testing.T) {
	for _, strategy := range []SpawnStrategy{SpawnCorners, SpawnClone} {
		t.Run(string(strategy), func(t *testing.T) {
			g := newGenerator(t, func(c *Config) {
				c.Width, c.Height = 23, 11
				c.MaxAgents = 6
				c.SpawnChance = 0.6
				c.PruneChance = 0.2
				c.TargetOpenFraction = 0.8
				c.SpawnStrategy = strategy
			})
			g.SetObserver(func(s StepInfo) {
				require.GreaterOrEqual(t, len(s.Agents), 1)
				require.LessOrEqual(t, len(s.Agents), 6)
				for _, a := range s.Agents {
					require.True(t, a.X >= 0 && a.X < 23 && a.Y >= 0 && a.Y < 11, "agent escaped to (%d,%d)", a.X, a.Y)
				}
			})
			g.GenerateGrid()
		})
	}
}

func TestBorderIsBlocked(t *testing.T) {
	g := newGenerator(t, func(c *Config) { c.TargetOpenFraction = 0.9; c.MaxIterations = 20000 })
	grid := g.GenerateGrid()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.OnEdge(x, y) {
				require.Equalf(t, core.Blocked, grid.At(x, y), "edge cell (%d,%d) open", x, y)
			}
		}
	}
}

func TestWithoutBorderEdgesMayOpen(t *testing.T) {
	g := newGenerator(t, func(c *Config) {
		c.Width, c.Height = 6, 6
		c.AddBorder = false
		c.TargetOpenFraction = 1
	})
	grid := g.GenerateGrid()
	assert.Equal(t, 36, grid.Count(core.Open))
	assert.True(t, g.Stats().TargetReached)
}

func TestDespecklePostcondition(t *testing.T) {
	g := newGenerator(t, func(c *Config) {
		c.Despeckle = true
		c.AddBorder = false
		c.TargetOpenFraction = 0.7
	})
	grid := g.GenerateGrid()
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			if grid.At(x, y) == core.Blocked {
				require.False(t, isolated(grid, x, y), "isolated wall left at (%d,%d)", x, y)
			}
		}
	}
}

func TestDespeckleSparesEdges(t *testing.T) {
	grid := core.NewGrid(5, 5, core.Open)
	grid.Set(2, 2, core.Blocked)
	grid.Set(0, 2, core.Blocked)
	grid.Set(3, 1, core.Blocked)
	grid.Set(3, 2, core.Blocked)
	despeckle(grid)

	assert.Equal(t, core.Blocked, grid.At(0, 2), "edge cells are exempt")
	assert.Equal(t, core.Blocked, grid.At(2, 2), "wall touching another wall is not a speck")
	assert.Equal(t, core.Blocked, grid.At(3, 1))

	lone := core.NewGrid(5, 5, core.Open)
	lone.Set(2, 2, core.Blocked)
	despeckle(lone)
	assert.Equal(t, 25, lone.Count(core.Open))
}

func TestUnreachableTargetReturnsBestEffort(t *testing.T) {
	g := newGenerator(t, func(c *Config) {
		c.TargetOpenFraction = 1
		c.MaxIterations = 25
		c.SpawnChance = 0
	})
	grid := g.GenerateGrid()
	stats := g.Stats()
	assert.Equal(t, 25, stats.Iterations)
	assert.False(t, stats.TargetReached)
	assert.Greater(t, grid.Count(core.Open), 0)
}

func TestDeterministicForSeed(t *testing.T) {
	for _, strategy := range []SpawnStrategy{SpawnCorners, SpawnClone} {
		a := newGenerator(t, func(c *Config) { c.SpawnStrategy = strategy }).GenerateGrid()
		b := newGenerator(t, func(c *Config) { c.SpawnStrategy = strategy }).GenerateGrid()
		assert.True(t, a.Equal(b), "strategy %s is not reproducible", strategy)
	}
}

func TestNextIterationLifecycle(t *testing.T) {
	g := newGenerator(t, nil)
	first := g.NextIteration()
	reference := newGenerator(t, nil).GenerateGrid()
	assert.True(t, first.Equal(reference), "first NextIteration must behave like GenerateGrid")

	first.Fill(core.Open)
	second := g.NextIteration()
	assert.True(t, second.Equal(reference), "finished grid must be returned unchanged")

	again := g.GenerateGrid()
	assert.Equal(t, again.W, reference.W)
	assert.False(t, again.Equal(reference), "GenerateGrid restarts with fresh randomness")
}

func TestQuadrantsCycleInOrder(t *testing.T) {
	q := quadrants(10, 7)
	assert.Equal(t, quadrant{x0: 0, x1: 5, y0: 0, y1: 4}, q[0])
	assert.Equal(t, quadrant{x0: 0, x1: 5, y0: 4, y1: 7}, q[1])
	assert.Equal(t, quadrant{x0: 5, x1: 10, y0: 4, y1: 7}, q[2])
	assert.Equal(t, quadrant{x0: 5, x1: 10, y0: 0, y1: 4}, q[3])

	tiny := quadrants(1, 1)
	for _, tq := range tiny {
		assert.Equal(t, quadrant{x0: 0, x1: 1, y0: 0, y1: 1}, tq)
	}
}

func TestCornerSpawnFollowsRotation(t *testing.T) {
	g := newGenerator(t, func(c *Config) { c.Width, c.Height = 20, 20 })
	g.reset()
	for i := 0; i < 8; i++ {
		g.spawn()
		a := g.agents[len(g.agents)-1]
		q := g.quads[i%4]
		require.True(t, a.X >= q.x0 && a.X < q.x1 && a.Y >= q.y0 && a.Y < q.y1,
			"spawn %d at (%d,%d) outside quadrant %d", i, a.X, a.Y, i%4)
	}
	assert.Equal(t, 0, g.cornerIndex)
}

func TestCloneSpawnSharesPosition(t *testing.T) {
	g := newGenerator(t, func(c *Config) { c.SpawnStrategy = SpawnClone })
	g.reset()
	g.spawn()
	require.Len(t, g.agents, 2)
	assert.Equal(t, g.agents[0].X, g.agents[1].X)
	assert.Equal(t, g.agents[0].Y, g.agents[1].Y)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"zero height":      func(c *Config) { c.Height = 0 },
		"no agents":        func(c *Config) { c.MaxAgents = 0 },
		"zero target":      func(c *Config) { c.TargetOpenFraction = 0 },
		"target above one": func(c *Config) { c.TargetOpenFraction = 1.2 },
		"turn chance":      func(c *Config) { c.ChangeDirectionChance = 2 },
		"spawn chance":     func(c *Config) { c.SpawnChance = -0.1 },
		"prune chance":     func(c *Config) { c.PruneChance = 1.1 },
		"no iterations":    func(c *Config) { c.MaxIterations = 0 },
		"unknown strategy": func(c *Config) { c.SpawnStrategy = "teleport" },
		"too many cells":   func(c *Config) { c.Width, c.Height = 1<<13, 1<<13 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w":              "12",
		"max_agents":     "3",
		"despeckle":      "true",
		"add_border":     "false",
		"spawn_strategy": "clone",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 3, cfg.MaxAgents)
	assert.True(t, cfg.Despeckle)
	assert.False(t, cfg.AddBorder)
	assert.Equal(t, SpawnClone, cfg.SpawnStrategy)

	_, err = FromMap(map[string]string{"despeckle": "maybe"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = FromMap(map[string]string{"max_agent": "0"})
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "max_agent")
}

func TestRegistered(t *testing.T) {
	gen, err := core.New("walker", map[string]string{"w": "16", "h": "16"})
	require.NoError(t, err)
	assert.Equal(t, "walker", gen.Name())
	grid := gen.GenerateGrid()
	assert.Equal(t, 16, grid.W)

	_, err = core.New("walker", map[string]string{"max_agents": "0"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

// scriptedRandom replays fixed Float64 values and records every IntRange
// call, answering with lo.
type scriptedRandom struct {
	t      *testing.T
	floats []float64
	ranges [][2]int
}

func (r *scriptedRandom) Float64() float64 {
	r.t.Helper()
	require.NotEmpty(r.t, r.floats, "unexpected Float64 draw")
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) IntRange(lo, hi int) int {
	r.ranges = append(r.ranges, [2]int{lo, hi})
	return lo
}

func TestDrawOrderPerIteration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.MaxAgents = 3
	cfg.ChangeDirectionChance = 0.5
	cfg.PruneChance = 0.5
	cfg.SpawnChance = 0.5
	cfg.TargetOpenFraction = 1
	cfg.MaxIterations = 2
	cfg.AddBorder = false
	rng := &scriptedRandom{t: t, floats: []float64{
		// iteration 1: turn agent 0, prune, spawn
		0.9, 0.9, 0.1,
		// iteration 2: turn agents 0 and 1, prune, spawn
		0.9, 0.9, 0.9, 0.1,
	}}

	g, err := NewWithRandom(cfg, rng)
	require.NoError(t, err)
	var steps []StepInfo
	g.SetObserver(func(s StepInfo) { steps = append(steps, s) })
	g.GenerateGrid()

	assert.Empty(t, rng.floats, "every scripted draw consumed")
	assert.Equal(t, [][2]int{
		{0, 4},         // initial agent direction
		{0, 5}, {0, 5}, // first spawn, bottom-left quadrant
		{0, 4},
		{0, 5}, {5, 10}, // second spawn, top-left quadrant
		{0, 4},
	}, rng.ranges)

	require.Len(t, steps, 2)
	require.Len(t, steps[0].Agents, 2)
	assert.Equal(t, Agent{X: 0, Y: 0, Dir: Up}, steps[0].Agents[1])
	require.Len(t, steps[1].Agents, 3)
	assert.Equal(t, Agent{X: 0, Y: 5, Dir: Up}, steps[1].Agents[2])
	assert.Equal(t, 2, g.cornerIndex)
}
