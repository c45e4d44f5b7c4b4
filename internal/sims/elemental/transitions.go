package elemental

// Phase thresholds. Comparisons are exact integer tests.
const (
	evaporateAbove   = 200
	evaporateLoss    = 50
	condenseBelow    = 180
	mudAbove         = 150
	dryBelow         = 100
	ashBelow         = 50
	quenchWetAtLeast = 200
	quenchWetLoss    = 100
)

// TransitionEffect flags what a transition pass did to a cell.
type TransitionEffect uint8

const (
	EffectEvaporated TransitionEffect = 1 << iota
	EffectCondensed
	EffectAshed
	EffectQuenched
	EffectIgnited
)

// Has reports whether all bits of f are set.
func (e TransitionEffect) Has(f TransitionEffect) bool { return e&f == f }

// ApplyHeat injects heat from an external source such as a fireball. Violent
// hits that meet a combustible solid's flash point ignite at full heat at once;
// otherwise heat accumulates and ignition is checked afterwards. Waterlogged
// cells are unaffected.
func ApplyHeat(cell Cell, amount uint8, violent bool) Cell {
	if cell.IsWaterlogged() {
		return cell
	}
	flash, hasFlash := cell.Solid.FlashPoint()
	if violent && cell.IsCombustible() && hasFlash && amount >= flash {
		cell.Gas = GasFire
		cell.Heat = 255
		return cell
	}
	cell.Heat = satAdd(cell.Heat, amount)
	if cell.CanIgnite() && hasFlash && cell.Heat >= flash {
		cell.Gas = GasFire
	}
	return cell
}

// ApplyTransitions runs the ordered phase-change rules on one cell.
func ApplyTransitions(cell Cell, neighbors [8]Cell) Cell {
	next, _ := applyTransitions(cell, neighbors)
	return next
}

func applyTransitions(cell Cell, neighbors [8]Cell) (Cell, TransitionEffect) {
	var eff TransitionEffect

	switch {
	case cell.Liquid == LiquidWater && cell.Heat > evaporateAbove:
		cell.Liquid = LiquidNone
		cell.Gas = GasSteam
		cell.Heat = satSub(cell.Heat, evaporateLoss)
		eff |= EffectEvaporated
	case cell.Gas == GasSteam && cell.Heat < condenseBelow:
		cell.Gas = GasNone
		if cell.Liquid == LiquidNone {
			cell.Liquid = LiquidWater
		}
		eff |= EffectCondensed
	}

	switch {
	case cell.Solid == SolidEarth && cell.Wet > mudAbove:
		cell.Solid = SolidMud
	case cell.Solid == SolidMud && cell.Wet < dryBelow:
		cell.Solid = SolidEarth
	}

	if cell.Gas == GasNone && cell.Liquid != LiquidWater && cell.CanIgnite() {
		if flash, ok := cell.Solid.FlashPoint(); ok && cell.Heat >= flash {
			cell.Gas = GasFire
			eff |= EffectIgnited
		}
	}
	if cell.Gas == GasNone && cell.Liquid == LiquidOil && !cell.IsWaterlogged() {
		for _, n := range neighbors {
			if n.IsBurning() {
				cell.Gas = GasFire
				eff |= EffectIgnited
				break
			}
		}
	}

	if cell.Gas == GasFire && cell.IsCombustible() && cell.Heat < ashBelow {
		cell.Solid = SolidAsh
		cell.Gas = GasNone
		eff |= EffectAshed
	}
	if cell.Gas == GasFire && cell.Wet >= quenchWetAtLeast {
		cell.Gas = GasNone
		cell.Heat /= 2
		cell.Wet = satSub(cell.Wet, quenchWetLoss)
		eff |= EffectQuenched
	}
	return cell, eff
}

// ApplyDecay bleeds off energy at the given rate: heat and pressure by rate,
// moisture by half of it.
func ApplyDecay(cell Cell, rate uint8) Cell {
	cell.Heat = satSub(cell.Heat, rate)
	cell.Wet = satSub(cell.Wet, rate/2)
	cell.Pressure = satSub(cell.Pressure, rate)
	return cell
}
