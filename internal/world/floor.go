package world

import "github.com/samdwyer/raycrawl/internal/vision"

// Floor is one generated dungeon level together with its fog-of-war state.
// A new floor replaces the previous one wholesale.
type Floor struct {
	ID         string
	Depth      int
	Grid       *Grid
	Spawn      Point
	Exit       Point
	Rooms      []Room
	Placements []Placement
	Visibility *vision.State
}

// PlacementsOf returns the placements of a single kind, in generation order.
func (f *Floor) PlacementsOf(kind PlacementKind) []Placement {
	var out []Placement
	for _, p := range f.Placements {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
