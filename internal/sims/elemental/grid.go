package elemental

import "fmt"

// Grid is the double-buffered arena. Readers see the front buffer, which holds
// the last committed tick; writers fill the back buffer. SwapBuffers publishes
// the back buffer and resyncs it so both buffers hold the committed state.
type Grid struct {
	w, h  int
	front []Cell
	back  []Cell
}

// NewGrid allocates an empty grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, front: make([]Cell, w*h), back: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the row-major index for (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies inside the grid. Coordinates are signed
// so neighbour probes past the edge can be tested directly.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Get reads the committed cell at (x, y). Out-of-range coordinates are a
// programming error and panic; use GetChecked at untrusted boundaries.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("elemental: Get(%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return g.front[g.Index(x, y)]
}

// GetChecked reads the committed cell at (x, y), reporting false when the
// coordinates fall outside the grid.
func (g *Grid) GetChecked(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.front[g.Index(x, y)], true
}

// Pending reads the working copy at (x, y) in the back buffer. Out-of-range
// reads return an empty cell.
func (g *Grid) Pending(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.back[g.Index(x, y)]
}

// Set writes the working copy in the back buffer.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.back[g.Index(x, y)] = c
}

// SetImmediate writes the committed front buffer directly, bypassing the tick
// pipeline. Presets and impact deposits use it between ticks.
func (g *Grid) SetImmediate(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.front[g.Index(x, y)] = c
}

// SwapBuffers publishes the back buffer and copies it into the new back so the
// next tick starts from identical buffers.
func (g *Grid) SwapBuffers() {
	g.front, g.back = g.back, g.front
	copy(g.back, g.front)
}

// Cells exposes the committed buffer in row-major order. Callers must treat it
// as read-only.
func (g *Grid) Cells() []Cell { return g.front }

// NonEmptyCount returns how many committed cells carry any material.
func (g *Grid) NonEmptyCount() int {
	n := 0
	for _, c := range g.front {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Fill sets every cell in both buffers to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.front {
		g.front[i] = c
	}
	copy(g.back, g.front)
}

// Clear empties both buffers.
func (g *Grid) Clear() { g.Fill(Cell{}) }

// ClearVolatile strips gas, liquid, pressure and moisture from every cell in
// both buffers, leaving solids and heat untouched.
func (g *Grid) ClearVolatile() {
	for i := range g.front {
		c := &g.front[i]
		c.Gas = GasNone
		c.Liquid = LiquidNone
		c.Pressure = 0
		c.Wet = 0
	}
	copy(g.back, g.front)
}

// load overwrites both buffers from cells, which must match the grid size.
func (g *Grid) load(cells []Cell) {
	copy(g.front, cells)
	copy(g.back, cells)
}
