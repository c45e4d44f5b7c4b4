package elemental

import "math"

// DisplacementEvent describes one explosion. It is applied once and never
// stored in the grid.
type DisplacementEvent struct {
	OriginX, OriginY int
	Heat             uint8
	Pressure         uint8
	Gas              Gas
	Radius           int
	IsViolent        bool
}

const (
	triggerPressureAbove = 200
	blastDecay           = 0.8
)

// CheckExplosionTrigger reports a spontaneous explosion when a burning
// combustible cell has built up more than 200 pressure.
func CheckExplosionTrigger(cell Cell, x, y int) (DisplacementEvent, bool) {
	if cell.Pressure <= triggerPressureAbove || cell.Gas != GasFire || !cell.IsCombustible() {
		return DisplacementEvent{}, false
	}
	return DisplacementEvent{
		OriginX:   x,
		OriginY:   y,
		Heat:      200,
		Pressure:  255,
		Gas:       GasFire,
		Radius:    5,
		IsViolent: true,
	}, true
}

type blastNode struct {
	x, y int
	dist int
}

// ApplyExplosiveDisplacement floods outward from the event origin over
// Moore-connected cells up to the event radius. Every visited cell gains heat
// and pressure scaled by 0.8^distance; cells beyond the origin that carry no
// gas receive the event gas. A violent blast shatters a combustible solid at
// the origin into rubble. Writes go to the back buffer. It returns the number
// of cells visited.
func ApplyExplosiveDisplacement(g *Grid, ev DisplacementEvent) int {
	if !g.InBounds(ev.OriginX, ev.OriginY) || ev.Radius < 0 {
		return 0
	}
	visited := make([]bool, g.w*g.h)
	queue := []blastNode{{x: ev.OriginX, y: ev.OriginY}}
	visited[g.Index(ev.OriginX, ev.OriginY)] = true

	for head := 0; head < len(queue); head++ {
		n := queue[head]
		factor := math.Pow(blastDecay, float64(n.dist))
		c := g.Pending(n.x, n.y)
		c.Heat = satAdd(c.Heat, uint8(float64(ev.Heat)*factor))
		c.Pressure = satAdd(c.Pressure, uint8(float64(ev.Pressure)*factor))
		if n.dist > 0 && ev.Gas != GasNone && c.Gas == GasNone {
			c.Gas = ev.Gas
		}
		if n.dist == 0 && ev.IsViolent && c.IsCombustible() {
			c.Solid = SolidRubble
		}
		g.Set(n.x, n.y, c)

		if n.dist >= ev.Radius {
			continue
		}
		for _, o := range MooreOffsets {
			nx, ny := n.x+o.DX, n.y+o.DY
			if !g.InBounds(nx, ny) {
				continue
			}
			idx := g.Index(nx, ny)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, blastNode{x: nx, y: ny, dist: n.dist + 1})
		}
	}
	return len(queue)
}
