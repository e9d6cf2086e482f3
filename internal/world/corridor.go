package world

// carveCorridor digs a two-tile-wide L-shaped tunnel from a to b.
// The horizontal leg runs along a's row first, then the vertical leg along b's column,
// so the elbow always sits at (b.X, a.Y).
func (g *Grid) carveCorridor(a, b Point) {
	g.carveHorizontalTunnel(a.X, b.X, a.Y)
	g.carveVerticalTunnel(a.Y, b.Y, b.X)
}

// carveHorizontalTunnel carves rows y and y+1 between x1 and x2 inclusive.
func (g *Grid) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
		g.carve(x, y+1)
	}
}

// carveVerticalTunnel carves columns x and x+1 between y1 and y2 inclusive.
func (g *Grid) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
		g.carve(x+1, y)
	}
}

// carveRoom sets all interior tiles within the room to floor.
func (g *Grid) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carve(x, y)
		}
	}
}
