package world

import "math/rand"

// PlacementKind names what an entity anchor is for.
type PlacementKind int

const (
	PlacementChest PlacementKind = iota
	PlacementShop
	PlacementMob
)

// String returns a human-readable placement name.
func (k PlacementKind) String() string {
	switch k {
	case PlacementChest:
		return "chest"
	case PlacementShop:
		return "shop"
	case PlacementMob:
		return "mob"
	default:
		return "unknown"
	}
}

// Placement is a spawn candidate rolled during generation.
// Positions are not validated against the grid; the populating step decides what to do
// with anchors that land on walls.
type Placement struct {
	Kind PlacementKind
	Room int // Index into Floor.Rooms
	Pos  Point
}

// rollPlacements decides chest, shop and mob anchors for every room except the spawn room.
// Props are rolled for all rooms first, then mobs, so the rng stream matches one pass per kind.
func rollPlacements(rooms []Room, cfg GeneratorConfig, rng *rand.Rand) []Placement {
	var placements []Placement

	for i := 1; i < len(rooms); i++ {
		anchor := rooms[i].Anchor()
		if rng.Float64() < cfg.ChestChance {
			placements = append(placements, Placement{
				Kind: PlacementChest,
				Room: i,
				Pos:  jitter(anchor, rng),
			})
		} else if rng.Float64() < cfg.ShopChance {
			placements = append(placements, Placement{
				Kind: PlacementShop,
				Room: i,
				Pos:  jitter(anchor, rng),
			})
		}
	}

	for i := 1; i < len(rooms); i++ {
		if rng.Float64() >= cfg.MobChance || cfg.MaxMobsPerRoom <= 0 {
			continue
		}
		room := rooms[i]
		anchor := room.Anchor()
		count := rng.Intn(cfg.MaxMobsPerRoom) + 1
		for j := 0; j < count; j++ {
			placements = append(placements, Placement{
				Kind: PlacementMob,
				Room: i,
				Pos: Point{
					X: anchor.X + rng.Intn(room.Width) - room.Width/2,
					Y: anchor.Y + rng.Intn(room.Height) - room.Height/2,
				},
			})
		}
	}

	return placements
}

// jitter offsets p by -1, 0 or 1 on each axis.
func jitter(p Point, rng *rand.Rand) Point {
	return Point{
		X: p.X + rng.Intn(3) - 1,
		Y: p.Y + rng.Intn(3) - 1,
	}
}
