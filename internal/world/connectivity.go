package world

// FloodFill returns a row-major mask of every passable tile reachable from start
// through 4-connected moves. A start on a non-passable tile reaches nothing.
func FloodFill(grid *Grid, start Point) []bool {
	reached := make([]bool, grid.Width*grid.Height)
	if !grid.IsPassable(start.X, start.Y) {
		return reached
	}

	queue := []Point{start}
	reached[start.Y*grid.Width+start.X] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !grid.IsPassable(nx, ny) {
				continue
			}
			idx := ny*grid.Width + nx
			if reached[idx] {
				continue
			}
			reached[idx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}
	return reached
}

// Reachable reports whether to can be walked to from from.
func Reachable(grid *Grid, from, to Point) bool {
	if !grid.InBounds(to.X, to.Y) {
		return false
	}
	return FloodFill(grid, from)[to.Y*grid.Width+to.X]
}
