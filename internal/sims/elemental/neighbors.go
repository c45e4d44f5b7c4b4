package elemental

// Offset is a relative neighbour position.
type Offset struct {
	DX, DY int
}

// MooreOffsets lists the eight surrounding cells, row by row.
var MooreOffsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// VonNeumannOffsets lists the four orthogonal neighbours.
var VonNeumannOffsets = [4]Offset{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// Neighbor reads the committed cell at (x+dx, y+dy). Probes outside the grid
// return an empty cell, so the arena edge behaves as open air.
func Neighbor(g *Grid, x, y, dx, dy int) Cell {
	c, _ := g.GetChecked(x+dx, y+dy)
	return c
}

// MooreNeighbors samples the eight neighbours of (x, y) in MooreOffsets order.
func MooreNeighbors(g *Grid, x, y int) [8]Cell {
	var out [8]Cell
	for i, o := range MooreOffsets {
		out[i] = Neighbor(g, x, y, o.DX, o.DY)
	}
	return out
}

// VonNeumannNeighbors samples the four orthogonal neighbours of (x, y).
func VonNeumannNeighbors(g *Grid, x, y int) [4]Cell {
	var out [4]Cell
	for i, o := range VonNeumannOffsets {
		out[i] = Neighbor(g, x, y, o.DX, o.DY)
	}
	return out
}
