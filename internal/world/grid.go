package world

const (
	// Default grid dimensions
	DefaultWidth  = 100
	DefaultHeight = 100
)

// Grid is a fixed-size tile map stored row-major.
type Grid struct {
	Width  int
	Height int
	tiles  []TileKind
}

// NewGrid creates a grid filled with walls.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]TileKind, width*height),
	}
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position. Out-of-bounds cells read as walls.
func (g *Grid) At(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.Width+x]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.Width+x] = t
}

// IsWall reports whether the tile at (x, y) is a wall, treating the outside as wall.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == TileWall
}

// IsFloor reports whether the tile at (x, y) is floor.
func (g *Grid) IsFloor(x, y int) bool {
	return g.At(x, y) == TileFloor
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.At(x, y).IsPassable()
}

// interior reports whether (x, y) is inside the reserved one-tile border.
func (g *Grid) interior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// carve writes floor at (x, y) if the cell is not part of the border ring.
func (g *Grid) carve(x, y int) {
	if g.interior(x, y) {
		g.tiles[y*g.Width+x] = TileFloor
	}
}

// Count returns how many cells hold the given tile kind.
func (g *Grid) Count(t TileKind) int {
	n := 0
	for _, k := range g.tiles {
		if k == t {
			n++
		}
	}
	return n
}
