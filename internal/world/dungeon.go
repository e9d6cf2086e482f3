package world

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raycrawl/internal/telemetry"
	"github.com/samdwyer/raycrawl/internal/vision"
)

const (
	// Room count and size parameters
	defaultMinRooms      = 15
	defaultExtraRooms    = 10
	defaultMinRoomSize   = 6
	defaultRoomSizeRange = 8

	// Entity anchor odds
	defaultChestChance    = 0.4
	defaultShopChance     = 0.05
	defaultMobChance      = 0.6
	defaultMaxMobsPerRoom = 3
)

// GeneratorConfig drives procedural generation for one floor.
type GeneratorConfig struct {
	Width, Height int

	MinRooms      int // Rooms always placed
	ExtraRooms    int // Up to ExtraRooms-1 more rooms are added at random
	RoomCount     int // Forces an exact room count when > 0
	MinRoomSize   int
	RoomSizeRange int // Sizes are drawn from [MinRoomSize, MinRoomSize+RoomSizeRange)

	ChestChance    float64
	ShopChance     float64 // Rolled only for rooms that did not get a chest
	MobChance      float64
	MaxMobsPerRoom int
}

// DefaultGeneratorConfig returns the standard 100x100 layout parameters.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		MinRooms:       defaultMinRooms,
		ExtraRooms:     defaultExtraRooms,
		MinRoomSize:    defaultMinRoomSize,
		RoomSizeRange:  defaultRoomSizeRange,
		ChestChance:    defaultChestChance,
		ShopChance:     defaultShopChance,
		MobChance:      defaultMobChance,
		MaxMobsPerRoom: defaultMaxMobsPerRoom,
	}
}

// Generator produces floors from a single random source.
// Two generators seeded identically produce identical floors.
type Generator struct {
	cfg   GeneratorConfig
	rng   *rand.Rand
	depth int
}

// NewGenerator creates a generator. A nil rng is replaced with a time-seeded one.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, rng: rng}
}

// Config returns the generator's parameters.
func (gen *Generator) Config() GeneratorConfig {
	return gen.cfg
}

// Generate carves a new floor: a chain of rooms joined by L-shaped corridors.
// Room i is always connected to room i-1, so the exit is reachable from the spawn.
// Generation cannot fail; degenerate configurations yield sparse or all-wall grids.
func (gen *Generator) Generate(ctx context.Context) *Floor {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	cfg := gen.cfg
	grid := NewGrid(cfg.Width, cfg.Height)

	rooms := make([]Room, 0, gen.roomCount())
	numRooms := cap(rooms)
	for i := 0; i < numRooms; i++ {
		room := gen.placeRoom(grid, i == 0)
		grid.carveRoom(room)

		// Connect to previous room
		if len(rooms) > 0 {
			grid.carveCorridor(room.Anchor(), rooms[len(rooms)-1].Anchor())
		}
		rooms = append(rooms, room)
	}

	floor := &Floor{
		Grid:       grid,
		Rooms:      rooms,
		Visibility: vision.NewState(grid.Width, grid.Height),
	}
	if len(rooms) > 0 {
		floor.Spawn = rooms[0].Anchor()
		floor.Exit = rooms[len(rooms)-1].Anchor()
	}

	// The spawn must stand on floor even if a margin clamp skipped its cell.
	grid.Set(floor.Spawn.X, floor.Spawn.Y, TileFloor)

	floor.Placements = rollPlacements(rooms, cfg, gen.rng)

	// The id is drawn last so it does not shift the layout stream.
	if id, err := uuid.NewRandomFromReader(gen.rng); err == nil {
		floor.ID = id.String()
	} else {
		floor.ID = uuid.NewString()
	}

	gen.depth++
	floor.Depth = gen.depth

	span.SetAttributes(
		attribute.String("floor.id", floor.ID),
		attribute.Int("floor.depth", floor.Depth),
		attribute.Int("dungeon.width", grid.Width),
		attribute.Int("dungeon.height", grid.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.floor_tiles", grid.Count(TileFloor)),
		attribute.Int("dungeon.chests", len(floor.PlacementsOf(PlacementChest))),
		attribute.Int("dungeon.shops", len(floor.PlacementsOf(PlacementShop))),
		attribute.Int("dungeon.mobs", len(floor.PlacementsOf(PlacementMob))),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return floor
}

// roomCount decides how many rooms this floor gets.
func (gen *Generator) roomCount() int {
	if gen.cfg.RoomCount > 0 {
		return gen.cfg.RoomCount
	}
	n := gen.cfg.MinRooms
	if gen.cfg.ExtraRooms > 0 {
		n += gen.rng.Intn(gen.cfg.ExtraRooms)
	}
	return max(n, 1)
}

// placeRoom draws a room's size and position. The first room is centered on the grid;
// the rest land anywhere that keeps them, plus a one-tile margin, inside the bounds.
func (gen *Generator) placeRoom(grid *Grid, first bool) Room {
	w := gen.roomSize()
	h := gen.roomSize()

	var x, y int
	if first {
		x = int(math.Floor(float64(grid.Width)/2 - float64(w)/2))
		y = int(math.Floor(float64(grid.Height)/2 - float64(h)/2))
	} else {
		x = 1 + gen.randomOffset(grid.Width-w-2)
		y = 1 + gen.randomOffset(grid.Height-h-2)
	}

	return Room{X: x, Y: y, Width: w, Height: h}
}

func (gen *Generator) roomSize() int {
	size := gen.cfg.MinRoomSize
	if gen.cfg.RoomSizeRange > 0 {
		size += gen.rng.Intn(gen.cfg.RoomSizeRange)
	}
	return max(size, 1)
}

// randomOffset returns a value in [0, span), or 0 when the span is empty.
func (gen *Generator) randomOffset(span int) int {
	if span <= 0 {
		return 0
	}
	return gen.rng.Intn(span)
}
