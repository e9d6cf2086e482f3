package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raycrawl/internal/entity"
	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/world"
)

// Message is one colored line of the message log.
type Message struct {
	Text  string
	Color tcell.Color
}

// Frame is everything the renderer needs to draw one tick.
type Frame struct {
	Floor    *world.Floor
	Player   *entity.Player
	Mobs     []*entity.Mob
	Chests   []*entity.Chest
	Shops    []*entity.Shop
	Drops    []entity.LootDrop
	Messages []Message // Newest first
	Banner   string    // Drawn centered over the map when set
	Palette  gamedata.Palette
}
