// Package entity provides game entities like the player, mobs and props.
package entity

import (
	"math"
	"math/rand"
)

const (
	playerMaxHealth = 100
	playerDamage    = 10
	playerSpeed     = 0.15 // Tiles per tick at full input
	slowedSpeed     = 0.08
	playerRadius    = 0.4  // Half-extent of the collision box in tiles
	potionHeal      = 25
	potionSpread    = 4
)

// Walls is the collision view of the map. *world.Grid satisfies it.
type Walls interface {
	IsWall(x, y int) bool
}

// Player is the explorer. Positions are continuous; the tile under the player is the floor
// of its coordinates.
type Player struct {
	X, Y      float64
	Health    float64
	MaxHealth int
	Damage    int
	Speed     float64
	Radius    float64
	Potions   int
	Gold      int
	Symbol    rune

	AttackCooldown int
	AttackAngle    float64 // Radians, direction of the last swing
	Slowed         int     // Ticks left at slowedSpeed
}

// NewPlayer creates a player at full health at the given position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Health:    playerMaxHealth,
		MaxHealth: playerMaxHealth,
		Damage:    playerDamage,
		Speed:     playerSpeed,
		Radius:    playerRadius,
		Symbol:    '@',
	}
}

// Position returns the current continuous coordinates.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// Tile returns the integer tile the player stands on.
func (p *Player) Tile() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// GetName returns the player's display name.
func (p *Player) GetName() string { return "You" }

// IsAlive returns true while the player has health left.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage subtracts health and returns the amount taken.
// Health may drop below zero; callers check IsAlive.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Health -= float64(amount)
	return amount
}

// TryMove moves by (dx, dy) scaled by speed (capped while slowed), unless any corner of the collision box
// would end up inside a wall. Returns true if the player moved.
func (p *Player) TryMove(walls Walls, dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	speed := p.Speed
	if p.Slowed > 0 {
		speed = math.Min(speed, slowedSpeed)
	}
	nextX := p.X + dx*speed
	nextY := p.Y + dy*speed

	corners := [4][2]float64{
		{nextX - p.Radius, nextY - p.Radius},
		{nextX + p.Radius, nextY - p.Radius},
		{nextX - p.Radius, nextY + p.Radius},
		{nextX + p.Radius, nextY + p.Radius},
	}
	for _, c := range corners {
		if walls.IsWall(int(math.Floor(c[0])), int(math.Floor(c[1]))) {
			return false
		}
	}

	p.X, p.Y = nextX, nextY
	return true
}

// UsePotion drinks a potion if one is carried and the player is hurt.
// Heals 25 +/- 4 capped at max health and returns the amount healed.
func (p *Player) UsePotion(rng *rand.Rand) float64 {
	missing := float64(p.MaxHealth) - p.Health
	if p.Potions <= 0 || missing <= 0 {
		return 0
	}
	p.Potions--
	heal := math.Min(potionHeal+rng.Float64()*2*potionSpread-potionSpread, missing)
	p.Health += heal
	return heal
}

// Respawn restores full health at (x, y).
func (p *Player) Respawn(x, y float64) {
	p.X, p.Y = x, y
	p.Health = float64(p.MaxHealth)
	p.AttackCooldown = 0
	p.Slowed = 0
}

// Slow caps movement speed for the given number of ticks.
func (p *Player) Slow(ticks int) {
	p.Slowed = max(p.Slowed, ticks)
}

// TickCooldown counts the attack cooldown and any slow down by one tick.
func (p *Player) TickCooldown() {
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.Slowed > 0 {
		p.Slowed--
	}
}
