package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raycrawl/internal/combat"
	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/telemetry"
	"github.com/samdwyer/raycrawl/internal/ui"
	"github.com/samdwyer/raycrawl/internal/vision"
	"github.com/samdwyer/raycrawl/internal/world"
)

// Message colors
var (
	colorInfo   = tcell.NewHexColor(0xE5E7EB)
	colorGood   = tcell.NewHexColor(0x10B981)
	colorBad    = tcell.NewHexColor(0xDC2626)
	colorGold   = tcell.NewHexColor(0xFBBF24)
	colorExit   = tcell.NewHexColor(0x34D399)
	colorCursed = tcell.NewHexColor(0x5F0000)
)

// respawnSeconds is how long the world stays frozen after the player dies.
const respawnSeconds = 2

// Input is the player's intent for one tick.
type Input struct {
	DX, DY    float64 // Movement direction, each in [-1, 1]
	Attack    bool
	Aim       bool    // AimAngle overrides the facing direction
	AimAngle  float64 // Radians
	Interact  bool
	UsePotion bool
}

// Session is the headless simulation: one player exploring a sequence of floors.
// It never touches the terminal, so it can be driven from tests tick by tick.
type Session struct {
	cfg  Config
	log  zerolog.Logger
	data *gamedata.Bundle
	rng  *rand.Rand // Gameplay rolls; the generator owns its own stream

	gen    *world.Generator
	eye    *vision.Engine
	melee  combat.Arc
	floor  *world.Floor
	player *entity.Player
	mobs   []*entity.Mob
	chests []*entity.Chest
	shops  []*entity.Shop
	drops  []entity.LootDrop

	messages     *MessageLog
	state        State
	respawnTicks int
	tick         int
}

// NewSession validates cfg, generates the first floor and places the player on its spawn.
// A nil clock uses time.Now for message expiry.
func NewSession(ctx context.Context, cfg Config, data *gamedata.Bundle, logger zerolog.Logger, now func() time.Time) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if data == nil || data.Mobs == nil || data.Loot == nil {
		return nil, errors.New("game data bundle is incomplete")
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := entity.NewPlayer(0, 0)
	s := &Session{
		cfg:      cfg,
		log:      logger,
		data:     data,
		rng:      rand.New(rand.NewSource(seed + 1)),
		gen:      world.NewGenerator(cfg.GeneratorConfig(), rand.New(rand.NewSource(seed))),
		eye:      vision.NewEngine(cfg.VisionConfig()),
		melee:    combat.PlayerArc(player.Damage),
		player:   player,
		messages: NewMessageLog(now),
		state:    StateExplore,
	}

	s.enterFloor(s.gen.Generate(ctx))

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("floor.id", s.floor.ID),
		attribute.Int("dungeon.rooms", len(s.floor.Rooms)),
		attribute.Int("party.start_x", s.floor.Spawn.X),
		attribute.Int("party.start_y", s.floor.Spawn.Y),
	)
	s.log.Info().Int64("seed", seed).Str("floor", s.floor.ID).Msg("session started")
	s.messages.Add("Find the exit ladder to go deeper.", colorInfo)
	return s, nil
}

// Update advances the simulation by one tick.
func (s *Session) Update(ctx context.Context, in Input) {
	if s.state == StateQuit {
		return
	}
	s.tick++

	if s.state == StateRespawning {
		s.respawnTicks--
		if s.respawnTicks <= 0 {
			s.respawn()
		}
		return
	}

	if in.UsePotion {
		s.drinkPotion()
	}
	s.movePlayer(in)
	s.eye.Recompute(s.floor.Grid, s.floor.Visibility, s.player.X, s.player.Y)
	s.updateMobs()
	s.handleCombat(ctx, in)
	if s.state == StateExplore && in.Interact {
		s.handleInteraction(ctx)
	}
}

// movePlayer applies the movement input. Diagonals are scaled so they are not faster.
func (s *Session) movePlayer(in Input) {
	dx, dy := in.DX, in.DY
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	if dx != 0 || dy != 0 {
		s.player.AttackAngle = math.Atan2(dy, dx)
	}
	if in.Aim {
		s.player.AttackAngle = in.AimAngle
	}
	s.player.TryMove(s.floor.Grid, dx, dy)
}

func (s *Session) drinkPotion() {
	if healed := s.player.UsePotion(s.rng); healed > 0 {
		s.messages.Add(fmt.Sprintf("Healed %d HP!", int(healed)), colorGood)
	}
}

// enterFloor swaps in a new floor and everything that lives on it.
func (s *Session) enterFloor(floor *world.Floor) {
	s.floor = floor
	pop := populate(floor, s.data, s.rng)
	s.mobs, s.chests, s.shops = pop.mobs, pop.chests, pop.shops
	s.drops = nil

	s.player.X = float64(floor.Spawn.X) + 0.5
	s.player.Y = float64(floor.Spawn.Y) + 0.5
	s.eye.Recompute(floor.Grid, floor.Visibility, s.player.X, s.player.Y)

	if !world.Reachable(floor.Grid, floor.Spawn, floor.Exit) {
		s.log.Warn().Str("floor", floor.ID).Msg("exit is not reachable from spawn")
	}
	s.log.Info().
		Str("floor", floor.ID).
		Int("depth", floor.Depth).
		Int("rooms", len(floor.Rooms)).
		Int("mobs", len(s.mobs)).
		Int("chests", len(s.chests)).
		Msg("entered floor")
}

// descend replaces the current floor with a freshly generated one.
func (s *Session) descend(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "floor.descend")
	defer span.End()

	from := s.floor.Depth
	s.messages.Add("You found the exit! Generating new dungeon...", colorExit)
	s.enterFloor(s.gen.Generate(ctx))
	s.messages.Add("A new dungeon awaits!", colorGold)

	span.SetAttributes(
		attribute.Int("floor.from_depth", from),
		attribute.Int("floor.depth", s.floor.Depth),
		attribute.String("floor.id", s.floor.ID),
		attribute.Int("player.gold", s.player.Gold),
	)
}

// die freezes the world until the respawn delay runs out.
func (s *Session) die() {
	s.state = StateRespawning
	s.respawnTicks = respawnSeconds * s.cfg.TickRate
	s.messages.Add("You have been defeated!", colorBad)
	s.log.Info().Str("floor", s.floor.ID).Int("tick", s.tick).Msg("player died")
}

func (s *Session) respawn() {
	spawn := s.floor.Spawn
	s.player.Respawn(float64(spawn.X)+0.5, float64(spawn.Y)+0.5)
	s.state = StateExplore
	s.messages.Add("You wake up back at the entrance...", colorGold)
}

// Quit ends the session; further updates are ignored.
func (s *Session) Quit() {
	s.state = StateQuit
}

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Floor returns the floor being played.
func (s *Session) Floor() *world.Floor { return s.floor }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// Mobs returns the living mobs on this floor.
func (s *Session) Mobs() []*entity.Mob { return s.mobs }

// Tick returns how many ticks have been simulated.
func (s *Session) Tick() int { return s.tick }

// Frame snapshots what the renderer needs for this tick.
func (s *Session) Frame() ui.Frame {
	active := s.messages.Active()
	msgs := make([]ui.Message, len(active))
	for i, m := range active {
		msgs[i] = ui.Message{Text: m.Text, Color: m.Color}
	}

	f := ui.Frame{
		Floor:    s.floor,
		Player:   s.player,
		Mobs:     s.mobs,
		Chests:   s.chests,
		Shops:    s.shops,
		Drops:    s.drops,
		Messages: msgs,
		Palette:  s.data.Palette,
	}
	if s.state == StateRespawning {
		f.Banner = "Respawning..."
	}
	return f
}
