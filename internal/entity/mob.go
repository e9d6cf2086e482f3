package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raycrawl/internal/gamedata"
)

// Mob is a hostile creature. Like the player it moves continuously.
type Mob struct {
	Def       *gamedata.MobDef // Reference to the mob definition
	Name      string
	Symbol    rune
	X, Y      float64
	RoomIndex int // Index of the room the mob spawned in
	HP        int
	MaxHP     int

	AttackCooldown int // Ticks until the mob may hit again
	Stunned        int // Ticks the mob stays frozen after being hit
}

// NewMob creates a mob from a data-driven definition, centered on tile (x, y).
func NewMob(def *gamedata.MobDef, x, y, roomIndex int) *Mob {
	return &Mob{
		Def:       def,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		X:         float64(x) + 0.5,
		Y:         float64(y) + 0.5,
		RoomIndex: roomIndex,
		HP:        def.HP,
		MaxHP:     def.HP,
	}
}

// Position returns the mob's continuous coordinates.
func (m *Mob) Position() (float64, float64) {
	return m.X, m.Y
}

// Tile returns the integer tile under the mob.
func (m *Mob) Tile() (int, int) {
	return int(math.Floor(m.X)), int(math.Floor(m.Y))
}

// GetName returns the mob's display name.
func (m *Mob) GetName() string { return m.Name }

// IsAlive returns true while the mob has hit points left.
func (m *Mob) IsAlive() bool { return m.HP > 0 }

// TakeDamage subtracts hit points and returns the amount taken.
func (m *Mob) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	m.HP -= amount
	return amount
}

// Stun freezes the mob for the given number of ticks.
func (m *Mob) Stun(ticks int) {
	m.Stunned = ticks
}

// Push displaces the mob without collision checks.
func (m *Mob) Push(dx, dy float64) {
	m.X += dx
	m.Y += dy
}

// Damage returns the damage the mob deals per hit.
func (m *Mob) Damage() int {
	return m.Def.Damage
}

// Speed returns how far the mob moves per tick.
func (m *Mob) Speed() float64 {
	return m.Def.Speed
}

// Color returns the tcell color for this mob.
func (m *Mob) Color() tcell.Color {
	return m.Def.TCellColor()
}

// ID returns the mob's type identifier.
func (m *Mob) ID() string {
	return m.Def.ID
}
