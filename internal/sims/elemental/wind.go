package elemental

// WindVector is the force at one cell: a unit direction and a strength.
type WindVector struct {
	DX, DY   int8
	Strength uint8
}

// Calm reports whether the vector moves nothing.
func (v WindVector) Calm() bool {
	return v.Strength == 0 || (v.DX == 0 && v.DY == 0)
}

// WindGrid holds one vector per arena cell. External drivers write it between
// ticks; the simulation only reads it.
type WindGrid struct {
	w, h    int
	vectors []WindVector
	global  WindVector
}

// NewWindGrid allocates a calm wind field.
func NewWindGrid(w, h int) *WindGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &WindGrid{w: w, h: h, vectors: make([]WindVector, w*h)}
}

// Width returns the number of columns.
func (wg *WindGrid) Width() int { return wg.w }

// Height returns the number of rows.
func (wg *WindGrid) Height() int { return wg.h }

// Get returns the vector at (x, y); outside the field the air is calm.
func (wg *WindGrid) Get(x, y int) WindVector {
	if x < 0 || y < 0 || x >= wg.w || y >= wg.h {
		return WindVector{}
	}
	return wg.vectors[y*wg.w+x]
}

// Set overrides a single cell's vector. Direction components are clamped to
// -1..1.
func (wg *WindGrid) Set(x, y int, v WindVector) {
	if x < 0 || y < 0 || x >= wg.w || y >= wg.h {
		return
	}
	wg.vectors[y*wg.w+x] = normalizeWind(v)
}

// SetGlobal applies one vector to every cell.
func (wg *WindGrid) SetGlobal(v WindVector) {
	v = normalizeWind(v)
	wg.global = v
	for i := range wg.vectors {
		wg.vectors[i] = v
	}
}

// Global returns the last vector passed to SetGlobal.
func (wg *WindGrid) Global() WindVector { return wg.global }

// Clear calms the whole field.
func (wg *WindGrid) Clear() { wg.SetGlobal(WindVector{}) }

// Active reports whether any cell has a non-calm vector.
func (wg *WindGrid) Active() bool {
	for _, v := range wg.vectors {
		if !v.Calm() {
			return true
		}
	}
	return false
}

func normalizeWind(v WindVector) WindVector {
	v.DX = clampUnit(v.DX)
	v.DY = clampUnit(v.DY)
	return v
}

func clampUnit(d int8) int8 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

// Strength thresholds for the graduated wind effects.
const (
	windGasAbove        = 35
	windAshAbove        = 100
	windStrongAtLeast   = 120
	windLiquidAbove     = 125
	windRelocateAbove   = 180
	windSmotherAbove    = 220
	windHeatDivisor     = 640
	windPressureDivisor = 768
	windLiquidMinMoved  = 40
	windLiquidMinLoss   = 20
	windFanHeat         = 8
	windFanPressure     = 6
)

// Displacement is the part of a cell that the wind pushes into (X, Y).
type Displacement struct {
	X, Y int
	Part Cell
}

// ApplyWind splits cell at (x, y) into what stays and what the wind carries to
// the downwind neighbour. Each effect is gated by its own strength threshold.
// The returned flag is false when nothing travels.
func ApplyWind(g *Grid, wind *WindGrid, x, y int, cell Cell) (Cell, Displacement, bool) {
	v := wind.Get(x, y)
	if v.Calm() {
		return cell, Displacement{}, false
	}
	s := int(v.Strength)
	retained := cell
	fan := s >= windStrongAtLeast && cell.Gas == GasFire

	tx, ty := x+int(v.DX), y+int(v.DY)
	if !g.InBounds(tx, ty) {
		if fan {
			retained = fanFlames(retained)
		}
		return retained, Displacement{}, false
	}

	var part Cell
	if s > windGasAbove && cell.Gas != GasNone {
		gas := cell.Gas
		if s > windSmotherAbove && gas.Flammable() {
			gas = GasSmoke
		}
		part.Gas = gas
		retained.Gas = GasNone
	}

	if s > windLiquidAbove && cell.Liquid != LiquidNone {
		moved := int(cell.Wet) / 2
		if moved < windLiquidMinMoved {
			moved = windLiquidMinMoved
		}
		loss := int(cell.Wet) / 2
		if loss < windLiquidMinLoss {
			loss = windLiquidMinLoss
		}
		part.Wet = clampInt(moved)
		retained.Wet = clampInt(int(cell.Wet) - loss)
		if s > windRelocateAbove {
			part.Liquid = cell.Liquid
			retained.Liquid = LiquidNone
		}
	}

	heatMoved := int(cell.Heat) * s / windHeatDivisor
	if s >= windStrongAtLeast && cell.Heat > 0 && heatMoved < 1 {
		heatMoved = 1
	}
	part.Heat = clampInt(heatMoved)
	retained.Heat = satSub(retained.Heat, part.Heat)

	part.Pressure = clampInt(int(cell.Pressure) * s / windPressureDivisor)
	retained.Pressure = satSub(retained.Pressure, part.Pressure)

	if fan {
		retained = fanFlames(retained)
	}

	if s > windAshAbove && cell.Solid == SolidAsh {
		part.Solid = SolidAsh
		retained.Solid = SolidNone
	}

	if part.IsEmpty() && part.Heat == 0 && part.Wet == 0 && part.Pressure == 0 {
		return retained, Displacement{}, false
	}
	return retained, Displacement{X: tx, Y: ty, Part: part}, true
}

func fanFlames(c Cell) Cell {
	c.Heat = satAdd(c.Heat, windFanHeat)
	c.Pressure = satAdd(c.Pressure, windFanPressure)
	return c
}

// MergeDisplaced folds a displaced part into target. Material only lands in a
// free slot or one already holding the same material; anything that cannot
// land is returned as rejected. Scalars always add, saturating.
func MergeDisplaced(target, part Cell) (merged, rejected Cell) {
	merged = target
	if part.Gas != GasNone {
		if merged.Gas == GasNone || merged.Gas == part.Gas {
			merged.Gas = part.Gas
		} else {
			rejected.Gas = part.Gas
		}
	}
	if part.Liquid != LiquidNone {
		if merged.Liquid == LiquidNone || merged.Liquid == part.Liquid {
			merged.Liquid = part.Liquid
		} else {
			rejected.Liquid = part.Liquid
		}
	}
	if part.Solid != SolidNone {
		if merged.Solid == SolidNone {
			merged.Solid = part.Solid
		} else {
			rejected.Solid = part.Solid
		}
	}
	merged.Heat = satAdd(merged.Heat, part.Heat)
	merged.Wet = satAdd(merged.Wet, part.Wet)
	merged.Pressure = satAdd(merged.Pressure, part.Pressure)
	return merged, rejected
}

type windMove struct {
	sx, sy int
	src    Cell
	d      Displacement
}

// holdBlocked keeps material at its source when the target's committed slot
// already holds a different material. Scalars still travel.
func holdBlocked(src, retained, part, target Cell) (Cell, Cell) {
	if part.Gas != GasNone && target.Gas != GasNone && target.Gas != part.Gas {
		retained.Gas = src.Gas
		part.Gas = GasNone
	}
	if part.Liquid != LiquidNone && target.Liquid != LiquidNone && target.Liquid != part.Liquid {
		retained.Liquid = src.Liquid
		part.Liquid = LiquidNone
	}
	if part.Solid != SolidNone && target.Solid != SolidNone {
		retained.Solid = src.Solid
		part.Solid = SolidNone
	}
	return retained, part
}

// ApplyWindPass advects the whole grid once. Sources are read from the front
// buffer; retained cells and arrivals are written to the back buffer. Material
// only heads for a slot that is free or holds the same material in the
// committed grid, so a source slot can only ever receive its own material.
// Material that still collides with another arrival returns to its source as
// the source's original material. It reports how many cells pushed something
// downwind.
func ApplyWindPass(g *Grid, wind *WindGrid) int {
	var moves []windMove
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			src := g.front[g.Index(x, y)]
			if src == (Cell{}) {
				continue
			}
			retained, d, ok := ApplyWind(g, wind, x, y, src)
			if ok {
				retained, d.Part = holdBlocked(src, retained, d.Part, g.Get(d.X, d.Y))
			}
			g.Set(x, y, retained)
			if ok {
				moves = append(moves, windMove{sx: x, sy: y, src: src, d: d})
			}
		}
	}
	for _, m := range moves {
		merged, rejected := MergeDisplaced(g.Pending(m.d.X, m.d.Y), m.d.Part)
		g.Set(m.d.X, m.d.Y, merged)
		if rejected.IsEmpty() {
			continue
		}
		if rejected.Gas != GasNone {
			rejected.Gas = m.src.Gas
		}
		back, _ := MergeDisplaced(g.Pending(m.sx, m.sy), rejected)
		g.Set(m.sx, m.sy, back)
	}
	return len(moves)
}
