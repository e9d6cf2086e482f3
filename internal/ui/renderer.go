package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	hudRows     = 1 // Status line at the bottom
	maxMessages = 5

	exitRune  = '>'
	chestRune = '='
	shopRune  = '$'
	lootRune  = '*'
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	camera Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the camera used by the last Render call.
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Render draws one frame: the map in three shading tiers, the entities standing on
// lit tiles, the player, the message log and the status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 0)
	if f.Player != nil {
		px, py := f.Player.Tile()
		r.camera.Center(px, py)
	}

	if f.Floor != nil {
		r.drawMap(f)
		r.drawEntities(f)
	}
	if f.Player != nil {
		r.drawPlayer(f)
		r.drawStatus(f, h-1)
	}
	r.drawMessages(f.Messages, r.camera.ViewHeight-1)
	if f.Banner != "" {
		r.drawCentered(f.Banner, r.camera.ViewHeight/2, tcell.StyleDefault.Foreground(tcell.NewHexColor(0x0E7E1F)).Bold(true))
	}

	r.screen.Show()
}

// drawMap renders lit tiles in full color, remembered tiles dimmed and unseen tiles not at all.
func (r *Renderer) drawMap(f Frame) {
	grid, vis := f.Floor.Grid, f.Floor.Visibility
	for sy := 0; sy < r.camera.ViewHeight; sy++ {
		for sx := 0; sx < r.camera.ViewWidth; sx++ {
			wx, wy := r.camera.ScreenToWorld(sx, sy)
			if !grid.InBounds(wx, wy) || !vis.IsExplored(wx, wy) {
				continue
			}
			tile := grid.At(wx, wy)
			color := f.Palette.TileColor(tile.String(), vis.IsVisible(wx, wy))
			r.screen.SetContent(sx, sy, tile.Rune(), tcell.StyleDefault.Foreground(color))
		}
	}

	// The exit is remembered once seen.
	exit := f.Floor.Exit
	if vis.IsExplored(exit.X, exit.Y) {
		r.put(exit.X, exit.Y, exitRune, tcell.StyleDefault.Foreground(f.Palette.ExitColor()).Bold(true))
	}
}

// drawEntities draws props and mobs, but only where the player can currently see.
func (r *Renderer) drawEntities(f Frame) {
	vis := f.Floor.Visibility

	for _, c := range f.Chests {
		if vis.IsVisible(c.X, c.Y) {
			r.put(c.X, c.Y, chestRune, tcell.StyleDefault.Foreground(f.Palette.ChestColor(c.Opened)))
		}
	}
	for _, s := range f.Shops {
		if vis.IsVisible(s.X, s.Y) {
			r.put(s.X, s.Y, shopRune, tcell.StyleDefault.Foreground(f.Palette.ShopColor()))
		}
	}
	for _, d := range f.Drops {
		if x, y := d.Tile(); vis.IsVisible(x, y) {
			r.put(x, y, lootRune, tcell.StyleDefault.Foreground(f.Palette.LootColor()))
		}
	}
	for _, m := range f.Mobs {
		if !m.IsAlive() {
			continue
		}
		if x, y := m.Tile(); vis.IsVisible(x, y) {
			style := tcell.StyleDefault.Foreground(m.Color())
			if m.Stunned > 0 {
				style = style.Dim(true)
			}
			r.put(x, y, m.Symbol, style)
		}
	}
}

func (r *Renderer) drawPlayer(f Frame) {
	x, y := f.Player.Tile()
	r.put(x, y, f.Player.Symbol, tcell.StyleDefault.Foreground(f.Palette.PlayerColor()).Bold(true))
}

// drawStatus renders the status line: health, potions, gold and depth.
func (r *Renderer) drawStatus(f Frame, y int) {
	p := f.Player
	depth := 0
	if f.Floor != nil {
		depth = f.Floor.Depth
	}
	status := fmt.Sprintf("HP: %d/%d  Potions: %d  Gold: %d  Depth: %d",
		int(math.Max(0, math.Floor(p.Health))), p.MaxHealth, p.Potions, p.Gold, depth)
	if p.AttackCooldown > 0 {
		status += "  (recovering)"
	}
	r.drawText(0, y, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawMessages stacks the log upward from row bottom, newest nearest the status line.
func (r *Renderer) drawMessages(messages []Message, bottom int) {
	for i, m := range messages {
		if i >= maxMessages || bottom-i < 0 {
			break
		}
		r.drawText(0, bottom-i, m.Text, tcell.StyleDefault.Foreground(m.Color))
	}
}

func (r *Renderer) drawCentered(text string, y int, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max((w-runewidth.StringWidth(text))/2, 0)
	r.drawText(x, y, text, style)
}

// drawText writes text starting at (x, y), advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

// put draws a rune at a world position if it is on screen.
func (r *Renderer) put(wx, wy int, ch rune, style tcell.Style) {
	if sx, sy, ok := r.camera.WorldToScreen(wx, wy); ok {
		r.screen.SetContent(sx, sy, ch, style)
	}
}
