package game

import "math"

// keyHoldTicks is how long one key press keeps the player moving. Terminals report
// presses and auto-repeats but never releases, so movement decays instead.
const keyHoldTicks = 8

// inputState turns discrete terminal events into per-tick Input.
type inputState struct {
	dx, dy         float64
	xTicks, yTicks int

	attack   bool
	aim      bool
	aimAngle float64
	interact bool
	potion   bool
}

// move registers a direction key. Horizontal and vertical presses are held
// independently, so alternating auto-repeats produce diagonal movement.
func (s *inputState) move(dx, dy float64) {
	if dx != 0 {
		s.dx, s.xTicks = dx, keyHoldTicks
	}
	if dy != 0 {
		s.dy, s.yTicks = dy, keyHoldTicks
	}
}

// attackToward queues a swing aimed at the given angle.
func (s *inputState) attackToward(angle float64) {
	s.attack = true
	s.aim = true
	s.aimAngle = angle
}

// next returns the input for the coming tick. One-shot actions are consumed
// and held movement decays by one tick.
func (s *inputState) next() Input {
	in := Input{
		Attack:    s.attack,
		Aim:       s.aim,
		AimAngle:  s.aimAngle,
		Interact:  s.interact,
		UsePotion: s.potion,
	}
	if s.xTicks > 0 {
		in.DX = s.dx
		s.xTicks--
	}
	if s.yTicks > 0 {
		in.DY = s.dy
		s.yTicks--
	}
	s.attack, s.aim, s.interact, s.potion = false, false, false, false
	return in
}

// angleTo returns the direction from (fx, fy) to (tx, ty) in radians.
func angleTo(fx, fy, tx, ty float64) float64 {
	return math.Atan2(ty-fy, tx-fx)
}
