package vision

import "math"

// walker steps a ray through the grid one tile boundary at a time
// (Amanatides-Woo traversal), so no tile the ray crosses is skipped.
// When a ray passes exactly through a corner the vertical neighbor is visited
// before the diagonal one, which keeps light from slipping between two diagonal walls.
type walker struct {
	x, y             int
	stepX, stepY     int
	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64
	limit            float64
}

// newWalker starts at the tile containing (ox, oy) and follows the unit direction (dx, dy)
// for at most limit tiles.
func newWalker(ox, oy, dx, dy, limit float64) walker {
	fx, fy := math.Floor(ox), math.Floor(oy)
	w := walker{x: int(fx), y: int(fy), limit: limit}
	w.stepX, w.tMaxX, w.tDeltaX = axis(ox, fx, dx)
	w.stepY, w.tMaxY, w.tDeltaY = axis(oy, fy, dy)
	return w
}

// axis returns the step sign, the distance to the first boundary and the distance
// between boundaries along one axis.
func axis(o, f, d float64) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		return 1, (f + 1 - o) / d, 1 / d
	case d < 0:
		return -1, (o - f) / -d, -1 / d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// advance moves into the next tile. It returns false once that tile starts beyond the limit.
func (w *walker) advance() bool {
	var t float64
	if w.tMaxX < w.tMaxY {
		t = w.tMaxX
		w.tMaxX += w.tDeltaX
		w.x += w.stepX
	} else {
		t = w.tMaxY
		w.tMaxY += w.tDeltaY
		w.y += w.stepY
	}
	return t <= w.limit
}
