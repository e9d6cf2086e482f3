// Package vision computes fog-of-war: which tiles an observer sees this tick
// and which tiles have ever been seen on the current floor.
package vision

// State holds the visible and explored masks for one floor.
// visible is rebuilt every tick; explored only ever gains tiles.
type State struct {
	width, height int
	visible       []bool
	explored      []bool
}

// NewState creates an all-false state for a width x height grid.
func NewState(width, height int) *State {
	width = max(width, 0)
	height = max(height, 0)
	return &State{
		width:    width,
		height:   height,
		visible:  make([]bool, width*height),
		explored: make([]bool, width*height),
	}
}

// Size returns the dimensions the state was created for.
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// IsVisible reports whether the tile is lit this tick. Out-of-bounds tiles are never visible.
func (s *State) IsVisible(x, y int) bool {
	if !s.inBounds(x, y) {
		return false
	}
	return s.visible[y*s.width+x]
}

// IsExplored reports whether the tile has ever been lit on this floor.
func (s *State) IsExplored(x, y int) bool {
	if !s.inBounds(x, y) {
		return false
	}
	return s.explored[y*s.width+x]
}

// VisibleCount returns how many tiles are lit this tick.
func (s *State) VisibleCount() int {
	return count(s.visible)
}

// ExploredCount returns how many tiles have been seen so far.
func (s *State) ExploredCount() int {
	return count(s.explored)
}

// Reset forgets everything, including exploration. Only a new floor should do this.
func (s *State) Reset() {
	clear(s.visible)
	clear(s.explored)
}

func (s *State) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *State) clearVisible() {
	clear(s.visible)
}

// mark lights a tile. Visibility and exploration are always set together.
func (s *State) mark(x, y int) {
	if !s.inBounds(x, y) {
		return
	}
	i := y*s.width + x
	s.visible[i] = true
	s.explored[i] = true
}

func count(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}
	return n
}
