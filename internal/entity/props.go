package entity

import "math"

// Chest holds a pre-rolled loot item until it is opened.
type Chest struct {
	X, Y   int
	Opened bool
	Loot   string
}

// Shop marks where the upgrade shop can be opened.
type Shop struct {
	X, Y int
}

// LootDrop is an item lying on the floor, usually dropped by a dead mob.
type LootDrop struct {
	X, Y float64
	Kind string
}

// Tile returns the integer tile under the drop.
func (d LootDrop) Tile() (int, int) {
	return int(math.Floor(d.X)), int(math.Floor(d.Y))
}
