// Package world provides dungeon generation and map management.
package world

// TileKind identifies what occupies a single grid cell.
type TileKind uint8

const (
	// TileWall is an impassable, opaque tile. It is the zero value so a fresh grid is solid rock.
	TileWall TileKind = iota
	// TileFloor is a passable, transparent tile.
	TileFloor
	// TileDoor is reserved. Generation never places doors.
	TileDoor
)

// String returns a lowercase name used for palette lookups and logs.
func (t TileKind) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	default:
		return "unknown"
	}
}

// IsPassable returns true if the tile can be walked on.
func (t TileKind) IsPassable() bool {
	return t == TileFloor || t == TileDoor
}

// IsOpaque returns true if the tile stops light.
func (t TileKind) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileDoor:
		return '+'
	default:
		return '#'
	}
}
