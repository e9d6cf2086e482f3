package game

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/gamedata"
)

const (
	interactRange = 1.5
	shopRange     = 2.0

	// bombSlowTicks lasts as long as the explosion flash.
	bombSlowTicks = 33
)

// handleInteraction opens the first closed chest in reach, greets a nearby shop,
// picks up loot and takes the exit ladder. Distances are measured from the player's tile.
func (s *Session) handleInteraction(ctx context.Context) {
	tx, ty := s.player.Tile()
	px, py := float64(tx), float64(ty)

	for _, c := range s.chests {
		if !c.Opened && math.Hypot(px-float64(c.X), py-float64(c.Y)) < interactRange {
			s.openChest(c)
			break
		}
	}
	if s.state != StateExplore {
		return
	}

	for _, shop := range s.shops {
		if math.Hypot(s.player.X-float64(shop.X), s.player.Y-float64(shop.Y)) < shopRange {
			s.messages.Add("The merchant has nothing to sell yet.", colorInfo)
			break
		}
	}

	s.drops = slices.DeleteFunc(s.drops, func(d entity.LootDrop) bool {
		if math.Hypot(px-d.X, py-d.Y) >= interactRange {
			return false
		}
		s.pickUp(d)
		return true
	})

	exit := s.floor.Exit
	if math.Hypot(px-float64(exit.X), py-float64(exit.Y)) < interactRange {
		s.descend(ctx)
	}
}

// openChest applies a chest's pre-rolled loot.
func (s *Session) openChest(c *entity.Chest) {
	c.Opened = true
	p := s.player

	switch c.Loot {
	case gamedata.LootPotion:
		p.Potions++
		s.messages.Add("Found a health potion!", colorGood)
	case gamedata.LootGold:
		gold := s.rng.Intn(20) + 10
		p.Gold += gold
		s.messages.Add(fmt.Sprintf("Found %d gold!", gold), colorGold)
	case gamedata.LootBomb:
		damage := s.rng.Intn(25) + 10
		p.TakeDamage(damage)
		p.Slow(bombSlowTicks)
		s.messages.Add(fmt.Sprintf("Explosion! -%d HP", damage), colorBad)
		s.messages.Add("The chest was trapped!", colorCursed)
		if !p.IsAlive() {
			s.die()
		}
	default:
		s.messages.Add("The chest is empty.", colorInfo)
	}
	s.log.Debug().Str("loot", c.Loot).Int("x", c.X).Int("y", c.Y).Msg("chest opened")
}

// pickUp applies a loot drop lying on the floor.
func (s *Session) pickUp(d entity.LootDrop) {
	switch d.Kind {
	case gamedata.LootPotion:
		s.player.Potions++
		s.messages.Add("Picked up a health potion!", colorGood)
	case gamedata.LootGold:
		gold := s.rng.Intn(10) + 5
		s.player.Gold += gold
		s.messages.Add(fmt.Sprintf("Picked up %d gold!", gold), colorGold)
	}
}
