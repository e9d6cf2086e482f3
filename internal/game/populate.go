package game

import (
	"math/rand"

	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/world"
)

type population struct {
	mobs   []*entity.Mob
	chests []*entity.Chest
	shops  []*entity.Shop
}

// populate turns the floor's placements into entities. Chest loot is rolled up front.
// Anchors that landed on rock are skipped so nothing spawns inside a wall.
func populate(floor *world.Floor, data *gamedata.Bundle, rng *rand.Rand) population {
	var pop population
	for _, p := range floor.Placements {
		if !floor.Grid.IsFloor(p.Pos.X, p.Pos.Y) {
			continue
		}
		switch p.Kind {
		case world.PlacementChest:
			pop.chests = append(pop.chests, &entity.Chest{
				X:    p.Pos.X,
				Y:    p.Pos.Y,
				Loot: data.Loot.Roll(gamedata.TableChest, rng),
			})
		case world.PlacementShop:
			pop.shops = append(pop.shops, &entity.Shop{X: p.Pos.X, Y: p.Pos.Y})
		case world.PlacementMob:
			def := data.Mobs.SpawnRandom(rng)
			if def == nil {
				continue
			}
			pop.mobs = append(pop.mobs, entity.NewMob(def, p.Pos.X, p.Pos.Y, p.Room))
		}
	}
	return pop
}
