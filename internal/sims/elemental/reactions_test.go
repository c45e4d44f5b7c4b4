package elemental

import "testing"

func TestReactionExtinguishesFireNextToWet(t *testing.T) {
	var n [8]Cell
	n[3].Wet = 151
	got := ApplyReactions(Cell{Gas: GasFire, Heat: 120}, n)
	if got.Gas != GasSteam {
		t.Fatalf("expected steam, got %v", got.Gas)
	}
	// heat 120-50=70, then diffusion toward avg 0: 70 + (0-70)/10 = 63
	if got.Heat != 63 {
		t.Fatalf("expected heat 63, got %d", got.Heat)
	}

	n[3].Wet = 150
	if got := ApplyReactions(Cell{Gas: GasFire, Heat: 120}, n); got.Gas != GasFire {
		t.Fatal("wet 150 is not enough to extinguish")
	}
}

func TestReactionSpreadsHeatFromBurningNeighbors(t *testing.T) {
	var n [8]Cell
	n[0].Gas = GasFire
	n[1].Gas = GasFire
	got := ApplyReactions(Cell{Solid: SolidGrass}, n)
	// 0 + 40 from spread, then diffusion: 40 + (0-40)/10 = 36
	if got.Heat != 36 {
		t.Fatalf("expected heat 36, got %d", got.Heat)
	}
	wet := ApplyReactions(Cell{Solid: SolidGrass, Wet: 255}, n)
	if wet.Heat != 0 {
		t.Fatalf("waterlogged grass must not gain heat, got %d", wet.Heat)
	}
}

func TestReactionMoistureOnlyRises(t *testing.T) {
	var n [8]Cell
	for i := range n {
		n[i].Wet = 100
	}
	if got := ApplyReactions(Cell{Wet: 0}, n); got.Wet != 10 {
		t.Fatalf("expected wet 10, got %d", got.Wet)
	}
	if got := ApplyReactions(Cell{Wet: 200}, n); got.Wet != 200 {
		t.Fatalf("wet must not fall through diffusion, got %d", got.Wet)
	}
}

func TestReactionHeatDiffusesBothWays(t *testing.T) {
	var n [8]Cell
	for i := range n {
		n[i].Heat = 100
	}
	if got := ApplyReactions(Cell{Heat: 0}, n); got.Heat != 10 {
		t.Fatalf("expected heat 10, got %d", got.Heat)
	}
	if got := ApplyReactions(Cell{Heat: 200}, n); got.Heat != 190 {
		t.Fatalf("expected heat 190, got %d", got.Heat)
	}
}

func TestReactionCombustionPressure(t *testing.T) {
	var n [8]Cell
	got := ApplyReactions(Cell{Solid: SolidWood, Gas: GasFire, Pressure: 250}, n)
	if got.Pressure != 255 {
		t.Fatalf("pressure must saturate, got %d", got.Pressure)
	}
	if got := ApplyReactions(Cell{Gas: GasFire}, n); got.Pressure != 0 {
		t.Fatal("fire without a solid builds no pressure")
	}
}
