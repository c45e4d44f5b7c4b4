package elemental

const (
	residualHeatLoss     = 1
	residualWetLoss      = 1
	residualPressureLoss = 2
	dissipateBelow       = 20
)

// ApplyResidualDecay applies the passive per-tick loss. A liquid layer anchors
// moisture, and smoke or steam dissipates once the cell is cool and calm.
func ApplyResidualDecay(cell Cell) Cell {
	cell.Heat = satSub(cell.Heat, residualHeatLoss)
	if cell.Liquid == LiquidNone {
		cell.Wet = satSub(cell.Wet, residualWetLoss)
	}
	cell.Pressure = satSub(cell.Pressure, residualPressureLoss)
	if (cell.Gas == GasSmoke || cell.Gas == GasSteam) && cell.Heat < dissipateBelow && cell.Pressure < dissipateBelow {
		cell.Gas = GasNone
	}
	return cell
}

// ApplyNatureReclaims is the slow recovery pass run on reclaim ticks only.
func ApplyNatureReclaims(cell Cell) Cell {
	switch cell.Solid {
	case SolidAsh:
		if cell.Heat < 10 && cell.Wet > 50 {
			cell.Solid = SolidEarth
		}
	case SolidRubble:
		if cell.Wet > 100 {
			cell.Solid = SolidEarth
		}
	case SolidMud:
		if cell.Wet < 30 && cell.Heat > 0 {
			cell.Solid = SolidEarth
		}
	}
	switch cell.Gas {
	case GasSteam:
		if cell.Heat < 50 {
			cell.Gas = GasNone
		}
	case GasFire:
		if !cell.HasFuel() && cell.Heat < 100 {
			cell.Gas = GasNone
		}
	}
	return cell
}

// ApplyFullDecayCycle runs residual decay and, on reclaim ticks, the recovery
// pass.
func ApplyFullDecayCycle(cell Cell, isReclaimTick bool) Cell {
	cell = ApplyResidualDecay(cell)
	if isReclaimTick {
		cell = ApplyNatureReclaims(cell)
	}
	return cell
}
