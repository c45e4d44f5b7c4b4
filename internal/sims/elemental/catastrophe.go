package elemental

// TurretMode configures the external turret driver that a composite preset
// hands back. Burst == 0 means the preset needs no turret.
type TurretMode struct {
	Name     string
	Payload  Payload
	Interval int // ticks between volleys
	Burst    int // shots per volley
	Spread   int // max jitter around the aim point, in cells
	Travel   int // ticks a shot spends in flight
	AimX     int
	AimY     int
}

// Active reports whether the mode fires at all.
func (m TurretMode) Active() bool { return m.Burst > 0 && m.Interval > 0 }

// Preset names accepted by ApplyPreset.
const (
	PresetGreatFlood        = "great_flood"
	PresetForestFireJump    = "forest_fire_jump"
	PresetMassiveWindstorm  = "massive_windstorm"
	PresetFuelField         = "fuel_field"
	PresetInterceptionChaos = "interception_chaos"
	PresetDoomsday          = "doomsday"
)

// PresetNames lists every preset in a stable order.
func PresetNames() []string {
	return []string{
		PresetGreatFlood,
		PresetForestFireJump,
		PresetMassiveWindstorm,
		PresetFuelField,
		PresetInterceptionChaos,
		PresetDoomsday,
	}
}

// forDisc calls fn for every in-bounds cell within radius of (cx, cy).
func forDisc(g *Grid, cx, cy, radius int, fn func(x, y int)) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.w {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			fn(x, y)
		}
	}
}

// GreatFlood saturates a disc with standing water.
func GreatFlood(g *Grid, cx, cy, radius int) {
	forDisc(g, cx, cy, radius, func(x, y int) {
		c := g.Get(x, y)
		c.Liquid = LiquidWater
		c.Wet = 255
		g.SetImmediate(x, y, c)
	})
}

// ForestFireJump sets a disc ablaze at full heat.
func ForestFireJump(g *Grid, cx, cy, radius int) {
	forDisc(g, cx, cy, radius, func(x, y int) {
		c := g.Get(x, y)
		c.Gas = GasFire
		c.Heat = 255
		g.SetImmediate(x, y, c)
	})
}

// MassiveWindstorm blows one strong vector across the whole field.
func MassiveWindstorm(wind *WindGrid, dx, dy int8, strength uint8) {
	wind.SetGlobal(WindVector{DX: dx, DY: dy, Strength: strength})
}

// FuelField lays a wood-filled rectangle fenced by stone.
func FuelField(g *Grid, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if !g.InBounds(x, y) {
				continue
			}
			solid := SolidWood
			if x == x0 || y == y0 || x == x0+w-1 || y == y0+h-1 {
				solid = SolidStone
			}
			g.SetImmediate(x, y, Cell{Solid: solid})
		}
	}
}

// InterceptionChaos builds a fuel field under a crosswind and returns a
// fireball turret aimed at its centre.
func InterceptionChaos(g *Grid, wind *WindGrid) TurretMode {
	w, h := g.w, g.h
	FuelField(g, w/4, h/4, w/2, h/2)
	MassiveWindstorm(wind, 1, 0, 150)
	return TurretMode{
		Name:     PresetInterceptionChaos,
		Payload:  PayloadFire,
		Interval: 4,
		Burst:    3,
		Spread:   max(1, w/8),
		Travel:   8,
		AimX:     w / 2,
		AimY:     h / 2,
	}
}

// Doomsday stacks every catastrophe at once and returns an explosive
// barrage.
func Doomsday(g *Grid, wind *WindGrid) TurretMode {
	w, h := g.w, g.h
	FuelField(g, w/2, h/4, w/2, h/2)
	GreatFlood(g, w/6, h/2, max(1, min(w, h)/6))
	ForestFireJump(g, 3*w/4, h/2, max(1, min(w, h)/8))
	MassiveWindstorm(wind, -1, 0, 230)
	return TurretMode{
		Name:     PresetDoomsday,
		Payload:  PayloadExplosive,
		Interval: 2,
		Burst:    5,
		Spread:   max(1, w/4),
		Travel:   6,
		AimX:     w / 2,
		AimY:     h / 2,
	}
}

// ApplyPreset runs the named preset with dimensions derived from the grid. It
// reports false for unknown names.
func ApplyPreset(name string, g *Grid, wind *WindGrid) (TurretMode, bool) {
	w, h := g.w, g.h
	radius := max(1, min(w, h)/4)
	switch name {
	case PresetGreatFlood:
		GreatFlood(g, w/2, h/2, radius)
	case PresetForestFireJump:
		ForestFireJump(g, w/2, h/2, radius)
	case PresetMassiveWindstorm:
		MassiveWindstorm(wind, 1, 1, 200)
	case PresetFuelField:
		FuelField(g, w/4, h/4, w/2, h/2)
	case PresetInterceptionChaos:
		return InterceptionChaos(g, wind), true
	case PresetDoomsday:
		return Doomsday(g, wind), true
	default:
		return TurretMode{}, false
	}
	return TurretMode{Name: name}, true
}
