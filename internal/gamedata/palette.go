package gamedata

import "github.com/gdamore/tcell/v2"

// Palette holds the hex colors used to draw the map, loaded from palette.json.
// Tile colors are keyed by tile name ("wall", "floor", "door").
type Palette struct {
	Visible     map[string]string `json:"visible"`  // Tiles lit this tick
	Explored    map[string]string `json:"explored"` // Tiles remembered but not lit
	Player      string            `json:"player"`
	Chest       string            `json:"chest"`
	ChestOpened string            `json:"chestOpened"`
	Shop        string            `json:"shop"`
	Exit        string            `json:"exit"`
	Loot        string            `json:"loot"`
}

// TileColor returns the color for a tile in the given shading tier.
func (p Palette) TileColor(tile string, visible bool) tcell.Color {
	if visible {
		return colorOr(p.Visible[tile], tcell.ColorGray)
	}
	return colorOr(p.Explored[tile], tcell.ColorDarkGray)
}

// PlayerColor returns the player's glyph color.
func (p Palette) PlayerColor() tcell.Color { return colorOr(p.Player, tcell.ColorBlue) }

// ChestColor returns the color of a chest, dimmed once it is open.
func (p Palette) ChestColor(opened bool) tcell.Color {
	if opened {
		return colorOr(p.ChestOpened, tcell.ColorGray)
	}
	return colorOr(p.Chest, tcell.ColorOrange)
}

// ShopColor returns the shop marker color.
func (p Palette) ShopColor() tcell.Color { return colorOr(p.Shop, tcell.ColorBlue) }

// ExitColor returns the exit ladder color.
func (p Palette) ExitColor() tcell.Color { return colorOr(p.Exit, tcell.ColorGreen) }

// LootColor returns the color of dropped loot.
func (p Palette) LootColor() tcell.Color { return colorOr(p.Loot, tcell.ColorYellow) }
