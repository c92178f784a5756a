package walker

import "roomgen/pkg/core"

// despeckle opens interior blocked cells whose eight neighbours are all open.
// Edge cells are left alone.
func despeckle(grid *core.Grid) {
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			if grid.At(x, y) == core.Blocked && isolated(grid, x, y) {
				grid.Set(x, y, core.Open)
			}
		}
	}
}

func isolated(grid *core.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) {
				continue
			}
			if grid.At(nx, ny) != core.Open {
				return false
			}
		}
	}
	return true
}

// addBorder forces the outer ring to blocked.
func addBorder(grid *core.Grid) {
	for x := 0; x < grid.W; x++ {
		grid.Set(x, 0, core.Blocked)
		grid.Set(x, grid.H-1, core.Blocked)
	}
	for y := 0; y < grid.H; y++ {
		grid.Set(0, y, core.Blocked)
		grid.Set(grid.W-1, y, core.Blocked)
	}
}
