package vision

import "math"

const (
	// DefaultRays is enough rays that an 8-tile circle shows no gaps.
	DefaultRays = 720
	// DefaultRange is the player's sight radius in tiles.
	DefaultRange = 8.0
)

// Opacity is the view of the map the engine needs. *world.Grid satisfies it.
type Opacity interface {
	InBounds(x, y int) bool
	IsWall(x, y int) bool
}

// Config holds ray-casting parameters.
type Config struct {
	Rays  int
	Range float64
}

// DefaultConfig returns the standard player vision settings.
func DefaultConfig() Config {
	return Config{Rays: DefaultRays, Range: DefaultRange}
}

// Engine casts a fixed fan of rays from a continuous position.
// Ray directions are computed once so Recompute does not allocate.
type Engine struct {
	cfg  Config
	cosA []float64
	sinA []float64
}

// NewEngine precomputes the ray fan for cfg. Non-positive ray counts fall back to DefaultRays.
func NewEngine(cfg Config) *Engine {
	if cfg.Rays <= 0 {
		cfg.Rays = DefaultRays
	}
	e := &Engine{
		cfg:  cfg,
		cosA: make([]float64, cfg.Rays),
		sinA: make([]float64, cfg.Rays),
	}
	for i := 0; i < cfg.Rays; i++ {
		angle := float64(i) / float64(cfg.Rays) * 2 * math.Pi
		e.cosA[i] = math.Cos(angle)
		e.sinA[i] = math.Sin(angle)
	}
	return e
}

// Config returns the engine's parameters.
func (e *Engine) Config() Config {
	return e.cfg
}

// Recompute clears the visible mask and relights it from (ox, oy).
// Every tile a ray passes through is marked visible and explored. A ray stops
// when it leaves the grid, or right after marking the first wall it touches.
func (e *Engine) Recompute(grid Opacity, state *State, ox, oy float64) {
	state.clearVisible()
	for i := range e.cosA {
		e.castRay(grid, state, ox, oy, e.cosA[i], e.sinA[i])
	}
}

func (e *Engine) castRay(grid Opacity, state *State, ox, oy, dx, dy float64) {
	w := newWalker(ox, oy, dx, dy, e.cfg.Range)
	for {
		if !grid.InBounds(w.x, w.y) {
			return
		}
		state.mark(w.x, w.y)
		if grid.IsWall(w.x, w.y) {
			return
		}
		if !w.advance() {
			return
		}
	}
}

// CanSee reports whether a straight line from (fx, fy) reaches the tile containing
// (tx, ty) within maxRange without crossing a wall first. The target tile itself may be a wall.
func CanSee(grid Opacity, fx, fy, tx, ty, maxRange float64) bool {
	dx, dy := tx-fx, ty-fy
	dist := math.Hypot(dx, dy)
	if dist > maxRange {
		return false
	}

	targetX, targetY := int(math.Floor(tx)), int(math.Floor(ty))
	if dist == 0 {
		return grid.InBounds(targetX, targetY)
	}

	w := newWalker(fx, fy, dx/dist, dy/dist, dist)
	for {
		if !grid.InBounds(w.x, w.y) {
			return false
		}
		if w.x == targetX && w.y == targetY {
			return true
		}
		if grid.IsWall(w.x, w.y) {
			return false
		}
		if !w.advance() {
			// Float error can stop one step short of the target cell.
			return w.x == targetX && w.y == targetY
		}
	}
}

// InRange reports whether two continuous positions are within r tiles.
func InRange(ax, ay, bx, by, r float64) bool {
	dx, dy := ax-bx, ay-by
	return dx*dx+dy*dy <= r*r
}
