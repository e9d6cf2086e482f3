package world

import "testing"

func TestNewGridIsAllWall(t *testing.T) {
	g := NewGrid(10, 8)
	if got := g.Count(TileWall); got != 80 {
		t.Errorf("Count(TileWall) = %d, want 80", got)
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			g.Set(x, y, TileFloor)
		}
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 2}, {2, 5}, {-100, 100}} {
		if g.At(p.X, p.Y) != TileWall {
			t.Errorf("At(%d,%d) = %v, want wall", p.X, p.Y, g.At(p.X, p.Y))
		}
		if !g.IsWall(p.X, p.Y) {
			t.Errorf("IsWall(%d,%d) = false outside the grid", p.X, p.Y)
		}
		if g.IsFloor(p.X, p.Y) {
			t.Errorf("IsFloor(%d,%d) = true outside the grid", p.X, p.Y)
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-1, 0, TileFloor)
	g.Set(3, 3, TileFloor)
	if g.Count(TileFloor) != 0 {
		t.Error("out-of-bounds Set must not write")
	}
}

func TestTileKindProperties(t *testing.T) {
	tests := []struct {
		kind     TileKind
		name     string
		passable bool
		opaque   bool
	}{
		{TileWall, "wall", false, true},
		{TileFloor, "floor", true, false},
		{TileDoor, "door", true, false},
		{TileKind(99), "unknown", false, false},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("TileKind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
		if got := tt.kind.IsPassable(); got != tt.passable {
			t.Errorf("%s.IsPassable() = %v, want %v", tt.name, got, tt.passable)
		}
		if got := tt.kind.IsOpaque(); got != tt.opaque {
			t.Errorf("%s.IsOpaque() = %v, want %v", tt.name, got, tt.opaque)
		}
	}
}

func TestRoomAnchor(t *testing.T) {
	tests := []struct {
		room Room
		want Point
	}{
		{Room{X: 0, Y: 0, Width: 6, Height: 6}, Point{3, 3}},
		{Room{X: 10, Y: 4, Width: 7, Height: 9}, Point{13, 8}},
	}
	for _, tt := range tests {
		if got := tt.room.Anchor(); got != tt.want {
			t.Errorf("%+v.Anchor() = %v, want %v", tt.room, got, tt.want)
		}
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{0, 0, 5, 5}
	b := Room{3, 3, 5, 5}
	c := Room{5, 5, 5, 5}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c only touch and should not intersect")
	}
}
