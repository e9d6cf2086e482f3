package game

import (
	"math"

	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/vision"
)

// mobSpacing is the closest two mobs may stand to each other.
const mobSpacing = 0.8

// updateMobs walks every aggroed mob one step toward the player.
func (s *Session) updateMobs() {
	p := s.player
	px, py := p.Tile()

	for _, m := range s.mobs {
		if !m.IsAlive() {
			continue
		}
		if m.Stunned > 0 {
			m.Stunned--
			continue
		}
		if !s.aggroed(m) {
			continue
		}

		mx, my := m.Tile()
		angle := math.Atan2(float64(py-my), float64(px-mx))
		nextX := m.X + math.Cos(angle)*m.Speed()
		nextY := m.Y + math.Sin(angle)*m.Speed()

		if !s.floor.Grid.IsFloor(int(math.Floor(nextX)), int(math.Floor(nextY))) {
			continue
		}
		if s.crowded(m, nextX, nextY) {
			continue
		}
		m.X, m.Y = nextX, nextY
	}
}

// aggroed reports whether a mob has noticed the player: the mob stands on a tile the
// player can see, the player is within aggro range and nothing blocks the line between them.
func (s *Session) aggroed(m *entity.Mob) bool {
	mx, my := m.Tile()
	if !s.floor.Visibility.IsVisible(mx, my) {
		return false
	}
	p := s.player
	if !vision.InRange(m.X, m.Y, p.X, p.Y, s.cfg.AggroRange) {
		return false
	}
	return vision.CanSee(s.floor.Grid, m.X, m.Y, p.X, p.Y, s.cfg.AggroRange)
}

// crowded reports whether another living mob is too close to (x, y).
func (s *Session) crowded(self *entity.Mob, x, y float64) bool {
	for _, other := range s.mobs {
		if other == self || !other.IsAlive() {
			continue
		}
		if math.Hypot(x-other.X, y-other.Y) < mobSpacing {
			return true
		}
	}
	return false
}
