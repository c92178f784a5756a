package walker

import "roomgen/pkg/core"

// Direction is a unit cardinal step.
type Direction struct {
	DX, DY int
}

// Cardinal directions. Up points towards increasing y.
var (
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

var cardinals = [4]Direction{Up, Down, Left, Right}

// RandomDirection draws one of the four cardinal directions uniformly.
func RandomDirection(rng core.Random) Direction {
	return cardinals[rng.IntRange(0, len(cardinals))]
}

// Agent is a random walker that opens the cell it stands on.
type Agent struct {
	X, Y int
	Dir  Direction
}

// advance moves the agent one step and clamps it back inside a w×h grid.
func (a *Agent) advance(w, h int) {
	a.X = clamp(a.X+a.Dir.DX, 0, w-1)
	a.Y = clamp(a.Y+a.Dir.DY, 0, h-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
