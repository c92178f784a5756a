package walker

// SpawnStrategy selects where newly spawned agents appear.
type SpawnStrategy string

const (
	// SpawnCorners cycles through the four quadrants and drops the new agent
	// at a random position inside the current one.
	SpawnCorners SpawnStrategy = "corners"
	// SpawnClone places the new agent on top of a randomly chosen existing
	// agent.
	SpawnClone SpawnStrategy = "clone"
)

func (s SpawnStrategy) valid() bool {
	return s == SpawnCorners || s == SpawnClone
}

// quadrant is a half-open coordinate range [x0,x1)×[y0,y1).
type quadrant struct {
	x0, x1, y0, y1 int
}

// quadrants returns bottom-left, top-left, top-right and bottom-right in that
// order. The split point is the midpoint rounded up; ranges that would be
// empty on one-wide axes collapse onto the last valid coordinate.
func quadrants(w, h int) [4]quadrant {
	mx := (w + 1) / 2
	my := (h + 1) / 2
	return [4]quadrant{
		span(0, mx, 0, my, w, h),
		span(0, mx, my, h, w, h),
		span(mx, w, my, h, w, h),
		span(mx, w, 0, my, w, h),
	}
}

func span(x0, x1, y0, y1, w, h int) quadrant {
	x0 = min(x0, w-1)
	y0 = min(y0, h-1)
	return quadrant{x0: x0, x1: max(x1, x0+1), y0: y0, y1: max(y1, y0+1)}
}

// spawn adds one agent according to the configured strategy.
func (g *Generator) spawn() {
	var a Agent
	switch g.cfg.SpawnStrategy {
	case SpawnClone:
		src := g.agents[g.rng.IntRange(0, len(g.agents))]
		a = Agent{X: src.X, Y: src.Y}
	default:
		q := g.quads[g.cornerIndex]
		g.cornerIndex = (g.cornerIndex + 1) % len(g.quads)
		a = Agent{X: g.rng.IntRange(q.x0, q.x1), Y: g.rng.IntRange(q.y0, q.y1)}
	}
	a.Dir = RandomDirection(g.rng)
	g.agents = append(g.agents, a)
}
