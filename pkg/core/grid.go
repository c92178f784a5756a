package core

import "strings"

// CellState is the value held by a single grid position.
type CellState uint8

const (
	// Open cells are walkable floor.
	Open CellState = iota
	// Blocked cells are solid wall.
	Blocked
)

// String returns the single-character glyph used for text output.
func (s CellState) String() string {
	if s == Blocked {
		return "#"
	}
	return "."
}

// Grid stores a 2D grid of cell states in row-major order.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates a grid with every cell set to fill. Dimensions must be
// positive; generators validate them before calling.
func NewGrid(w, h int, fill CellState) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, data: make([]CellState, w*h)}
	g.Fill(fill)
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// OnEdge reports whether (x, y) is on the outer ring.
func (g *Grid) OnEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// At returns the state at (x, y).
func (g *Grid) At(x, y int) CellState { return g.data[g.Index(x, y)] }

// Set stores state at (x, y).
func (g *Grid) Set(x, y int, s CellState) { g.data[g.Index(x, y)] = s }

// Fill sets every cell to s.
func (g *Grid) Fill(s CellState) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Clone returns a deep copy that shares no memory with g.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]CellState, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Count returns how many cells hold s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.data {
		if c == s {
			n++
		}
	}
	return n
}

// OpenFraction returns the ratio of open cells to all cells.
func (g *Grid) OpenFraction() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return float64(g.Count(Open)) / float64(len(g.data))
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as rows of glyphs, top row (highest y) first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			b.WriteString(g.At(x, y).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
