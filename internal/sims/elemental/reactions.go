package elemental

// Reaction thresholds. They are balance constants and must stay exact.
const (
	extinguishWetThreshold = 150
	extinguishHeatLoss     = 50
	spreadHeatPerFire      = 20
	diffusionDivisor       = 10
	combustionPressure     = 10
)

// ApplyReactions computes the neighbourhood-driven update for one cell. Rules
// run in order on the same working copy, so later rules see earlier results:
// extinguish, spread, moisture diffusion, heat diffusion, combustion pressure.
func ApplyReactions(cell Cell, neighbors [8]Cell) Cell {
	next := cell

	if next.Gas == GasFire {
		for _, n := range neighbors {
			if n.Wet > extinguishWetThreshold {
				next.Gas = GasSteam
				next.Heat = satSub(next.Heat, extinguishHeatLoss)
				break
			}
		}
	}

	if next.CanIgnite() {
		burning := 0
		for _, n := range neighbors {
			if n.IsBurning() {
				burning++
			}
		}
		next.Heat = clampInt(int(next.Heat) + spreadHeatPerFire*burning)
	}

	var wetSum, heatSum int
	for _, n := range neighbors {
		wetSum += int(n.Wet)
		heatSum += int(n.Heat)
	}
	avgWet := wetSum / len(neighbors)
	avgHeat := heatSum / len(neighbors)

	if avgWet > int(next.Wet) {
		next.Wet = clampInt(int(next.Wet) + (avgWet-int(next.Wet))/diffusionDivisor)
	}
	next.Heat = clampInt(int(next.Heat) + (avgHeat-int(next.Heat))/diffusionDivisor)

	if next.Gas == GasFire && next.Solid != SolidNone {
		next.Pressure = satAdd(next.Pressure, combustionPressure)
	}
	return next
}
