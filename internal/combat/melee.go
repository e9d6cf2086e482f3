// Package combat resolves real-time melee between the player and mobs.
package combat

import "math"

// Combatant is anything that can be hit.
// Both the player and mobs implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	Position() (float64, float64)
	TakeDamage(amount int) int // Returns actual damage taken
}

// Target is a combatant that reacts to a melee hit by being stunned and pushed back.
type Target interface {
	Combatant
	Stun(ticks int)
	Push(dx, dy float64)
}

// Arc describes a melee swing: everything alive within Reach tiles and within
// HalfAngle radians of the swing direction is hit.
type Arc struct {
	Reach     float64
	HalfAngle float64
	Damage    int
	StunTicks int
	Knockback float64 // Tiles the target is pushed away from the attacker
	Cooldown  int     // Ticks before the attacker may swing again
}

// PlayerArc returns the player's default swing.
func PlayerArc(damage int) Arc {
	return Arc{
		Reach:     2.5,
		HalfAngle: math.Pi / 4,
		Damage:    damage,
		StunTicks: 15,
		Knockback: 0.5,
		Cooldown:  30,
	}
}

// Hit records the outcome of a swing against one target.
type Hit struct {
	Target Target
	Damage int
	Killed bool
}

// Covers reports whether a target at (tx, ty) is inside the arc swung from (ox, oy) toward angle.
func (a Arc) Covers(ox, oy, angle, tx, ty float64) bool {
	if math.Hypot(tx-ox, ty-oy) > a.Reach {
		return false
	}
	diff := math.Abs(angle - math.Atan2(ty-oy, tx-ox))
	// Wrap into [-pi, pi] so a swing at +179 degrees covers a target at -179.
	diff = math.Atan2(math.Sin(diff), math.Cos(diff))
	return math.Abs(diff) <= a.HalfAngle
}

// Swing hits every alive target covered by the arc. Each hit deals damage, stuns the target
// and knocks it back along the line from the attacker.
func (a Arc) Swing(ox, oy, angle float64, targets []Target) []Hit {
	var hits []Hit
	for _, t := range targets {
		if !t.IsAlive() {
			continue
		}
		tx, ty := t.Position()
		if !a.Covers(ox, oy, angle, tx, ty) {
			continue
		}

		dealt := t.TakeDamage(a.Damage)
		t.Stun(a.StunTicks)
		away := math.Atan2(ty-oy, tx-ox)
		t.Push(math.Cos(away)*a.Knockback, math.Sin(away)*a.Knockback)

		hits = append(hits, Hit{Target: t, Damage: dealt, Killed: !t.IsAlive()})
	}
	return hits
}

// Adjacent reports whether two positions are close enough for a mob's bite.
// Positions are floored to tiles first, so reach is measured tile to tile.
func Adjacent(ax, ay, bx, by float64) bool {
	dx := math.Floor(ax) - math.Floor(bx)
	dy := math.Floor(ay) - math.Floor(by)
	return math.Hypot(dx, dy) < 1.5
}
