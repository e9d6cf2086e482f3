package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// MobDef defines a mob type loaded from JSON.
type MobDef struct {
	ID             string  `json:"id"`             // Unique identifier (e.g., "ghoul")
	Name           string  `json:"name"`           // Display name (e.g., "Ghoul")
	Glyph          string  `json:"glyph"`          // Single character for rendering (e.g., "g")
	Color          string  `json:"color"`          // Hex color code (e.g., "#DC2626")
	HP             int     `json:"hp"`             // Base hit points
	Damage         int     `json:"damage"`         // Damage per hit on the player
	Speed          float64 `json:"speed"`          // Tiles moved per tick while chasing
	AttackCooldown int     `json:"attackCooldown"` // Ticks between hits
	SpawnWeight    int     `json:"spawnWeight"`    // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MobDef) GlyphRune() rune {
	for _, r := range m.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (m *MobDef) TCellColor() tcell.Color {
	return colorOr(m.Color, tcell.ColorRed)
}

// MobsFile represents the structure of mobs.json.
type MobsFile struct {
	Mobs []MobDef `json:"mobs"`
}

// MobRegistry holds loaded mob definitions and provides spawning utilities.
type MobRegistry struct {
	mobs        []MobDef
	totalWeight int
}

// NewMobRegistry creates a registry from loaded mob definitions.
func NewMobRegistry(mobs []MobDef) (*MobRegistry, error) {
	if len(mobs) == 0 {
		return nil, errors.New("no mobs loaded from mobs.json")
	}
	totalWeight := 0
	for _, m := range mobs {
		if m.SpawnWeight < 0 {
			return nil, errors.New("mob " + m.ID + " has a negative spawn weight")
		}
		totalWeight += m.SpawnWeight
	}
	return &MobRegistry{
		mobs:        mobs,
		totalWeight: totalWeight,
	}, nil
}

// SpawnRandom selects a random mob definition using weighted probability.
// Mobs with higher spawnWeight are more likely to be selected.
func (r *MobRegistry) SpawnRandom(rng *rand.Rand) *MobDef {
	if r.totalWeight <= 0 {
		return &r.mobs[0]
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which mob this roll corresponds to
	cumulative := 0
	for i := range r.mobs {
		cumulative += r.mobs[i].SpawnWeight
		if roll < cumulative {
			return &r.mobs[i]
		}
	}

	return &r.mobs[len(r.mobs)-1]
}

// GetByID returns the mob definition with the given ID, or nil if not found.
func (r *MobRegistry) GetByID(id string) *MobDef {
	for i := range r.mobs {
		if r.mobs[i].ID == id {
			return &r.mobs[i]
		}
	}
	return nil
}

// Count returns the number of mob types in the registry.
func (r *MobRegistry) Count() int {
	return len(r.mobs)
}
