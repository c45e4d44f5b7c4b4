package elemental

// Payload is the material a projectile deposits on impact.
type Payload uint8

const (
	PayloadFire Payload = iota
	PayloadWater
	PayloadExplosive
	PayloadOil
)

func (p Payload) String() string {
	switch p {
	case PayloadFire:
		return "fire"
	case PayloadWater:
		return "water"
	case PayloadExplosive:
		return "explosive"
	case PayloadOil:
		return "oil"
	}
	return "unknown"
}

// ParsePayload maps a payload name back to its value.
func ParsePayload(name string) (Payload, bool) {
	for _, p := range []Payload{PayloadFire, PayloadWater, PayloadExplosive, PayloadOil} {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// Impact amounts.
const (
	fireImpactHeat    = 200
	waterImpactWet    = 200
	oilImpactWet      = 40
	blastImpactHeat   = 180
	blastImpactPress  = 220
	blastImpactRadius = 3
)

// Deposit applies a projectile payload to the committed cell at (x, y).
// Explosive payloads do not touch the cell directly; they return the event to
// queue for the next tick. Out-of-range impacts are dropped.
func Deposit(g *Grid, x, y int, p Payload) (DisplacementEvent, bool) {
	c, ok := g.GetChecked(x, y)
	if !ok {
		return DisplacementEvent{}, false
	}
	switch p {
	case PayloadFire:
		g.SetImmediate(x, y, ApplyHeat(c, fireImpactHeat, true))
	case PayloadWater:
		if c.Liquid == LiquidNone {
			c.Liquid = LiquidWater
		}
		c.Wet = satAdd(c.Wet, waterImpactWet)
		g.SetImmediate(x, y, c)
	case PayloadOil:
		if c.Liquid == LiquidNone {
			c.Liquid = LiquidOil
		}
		c.Wet = satAdd(c.Wet, oilImpactWet)
		g.SetImmediate(x, y, c)
	case PayloadExplosive:
		return DisplacementEvent{
			OriginX:   x,
			OriginY:   y,
			Heat:      blastImpactHeat,
			Pressure:  blastImpactPress,
			Gas:       GasSmoke,
			Radius:    blastImpactRadius,
			IsViolent: true,
		}, true
	}
	return DisplacementEvent{}, false
}
