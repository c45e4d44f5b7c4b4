package elemental

import "testing"

func TestApplyHeatViolentIgnition(t *testing.T) {
	got := ApplyHeat(Cell{Solid: SolidGrass}, 200, true)
	if got.Gas != GasFire || got.Heat != 255 {
		t.Fatalf("violent hit on grass should ignite at 255, got %+v", got)
	}
	stone := ApplyHeat(Cell{Solid: SolidStone}, 200, true)
	if stone.Gas == GasFire {
		t.Fatal("stone must not ignite at 200")
	}
	if stone.Heat != 200 {
		t.Fatalf("stone should still absorb heat, got %d", stone.Heat)
	}
}

func TestApplyHeatWaterloggedNeverIgnites(t *testing.T) {
	c := Cell{Solid: SolidGrass, Wet: 255}
	got := ApplyHeat(c, 255, true)
	if got.Gas == GasFire {
		t.Fatal("waterlogged grass ignited")
	}
	if got != c {
		t.Fatalf("waterlogged cell must be untouched, got %+v", got)
	}
}

func TestApplyHeatGradualIgnition(t *testing.T) {
	c := Cell{Solid: SolidWood, Heat: 100}
	c = ApplyHeat(c, 40, false)
	if c.Gas == GasFire || c.Heat != 140 {
		t.Fatalf("wood below 150 should only warm, got %+v", c)
	}
	c = ApplyHeat(c, 10, false)
	if c.Gas != GasFire || c.Heat != 150 {
		t.Fatalf("wood at its flash point should ignite, got %+v", c)
	}
	if got := ApplyHeat(Cell{Solid: SolidWood}, 100, true); got.Gas == GasFire {
		t.Fatal("violent hit below the flash point must not ignite")
	}
}

func TestWaterSteamBoundaries(t *testing.T) {
	var n [8]Cell
	got := ApplyTransitions(Cell{Liquid: LiquidWater, Heat: 201}, n)
	if got.Gas != GasSteam || got.Liquid != LiquidNone || got.Heat != 151 {
		t.Fatalf("water at 201 should become steam, got %+v", got)
	}
	if got := ApplyTransitions(Cell{Liquid: LiquidWater, Heat: 200}, n); got.Liquid != LiquidWater {
		t.Fatal("water at exactly 200 must stay water")
	}
	got = ApplyTransitions(Cell{Gas: GasSteam, Heat: 179}, n)
	if got.Gas != GasNone || got.Liquid != LiquidWater {
		t.Fatalf("steam at 179 should condense, got %+v", got)
	}
	if got := ApplyTransitions(Cell{Gas: GasSteam, Heat: 185}, n); got.Gas != GasSteam {
		t.Fatal("steam at 185 must stay steam")
	}
	if got := ApplyTransitions(Cell{Gas: GasSteam, Heat: 180}, n); got.Gas != GasSteam {
		t.Fatal("steam at exactly 180 must stay steam")
	}
}

func TestMudFormationAndDrying(t *testing.T) {
	var n [8]Cell
	if got := ApplyTransitions(Cell{Solid: SolidEarth, Wet: 151}, n); got.Solid != SolidMud {
		t.Fatalf("earth at wet 151 should be mud, got %v", got.Solid)
	}
	if got := ApplyTransitions(Cell{Solid: SolidEarth, Wet: 150}, n); got.Solid != SolidEarth {
		t.Fatal("earth at wet 150 stays earth")
	}
	if got := ApplyTransitions(Cell{Solid: SolidMud, Wet: 99}, n); got.Solid != SolidEarth {
		t.Fatalf("mud at wet 99 should dry, got %v", got.Solid)
	}
	if got := ApplyTransitions(Cell{Solid: SolidMud, Wet: 100}, n); got.Solid != SolidMud {
		t.Fatal("mud at wet 100 stays mud")
	}
}

func TestCombustionCompletesToAsh(t *testing.T) {
	var n [8]Cell
	got, eff := applyTransitions(Cell{Solid: SolidGrass, Gas: GasFire, Heat: 49}, n)
	if got.Solid != SolidAsh || got.Gas != GasNone || !eff.Has(EffectAshed) {
		t.Fatalf("cool burning grass should become ash, got %+v", got)
	}
	if got := ApplyTransitions(Cell{Solid: SolidGrass, Gas: GasFire, Heat: 50}, n); got.Solid != SolidGrass {
		t.Fatal("grass at heat 50 keeps burning")
	}
}

func TestFireQuenchedWhenSoaked(t *testing.T) {
	var n [8]Cell
	got, eff := applyTransitions(Cell{Gas: GasFire, Heat: 180, Wet: 200}, n)
	if got.Gas != GasNone || got.Heat != 90 || got.Wet != 100 || !eff.Has(EffectQuenched) {
		t.Fatalf("soaked fire should be quenched, got %+v", got)
	}
}

func TestIgnitionAtFlashPoint(t *testing.T) {
	var n [8]Cell
	got, eff := applyTransitions(Cell{Solid: SolidGrass, Heat: 100}, n)
	if got.Gas != GasFire || !eff.Has(EffectIgnited) {
		t.Fatalf("grass at 100 heat should ignite, got %+v", got)
	}
	if got := ApplyTransitions(Cell{Solid: SolidGrass, Heat: 99}, n); got.Gas == GasFire {
		t.Fatal("grass below its flash point ignited")
	}
}

func TestOilIgnitesFromBurningNeighbor(t *testing.T) {
	var n [8]Cell
	oil := Cell{Liquid: LiquidOil, Wet: 40}
	if got := ApplyTransitions(oil, n); got.Gas == GasFire {
		t.Fatal("oil must not ignite without fire nearby")
	}
	n[6].Gas = GasFire
	if got := ApplyTransitions(oil, n); got.Gas != GasFire {
		t.Fatalf("oil next to fire should ignite, got %+v", got)
	}
}

func TestApplyDecaySaturates(t *testing.T) {
	got := ApplyDecay(Cell{Heat: 3, Wet: 1, Pressure: 200}, 10)
	if got.Heat != 0 || got.Wet != 0 || got.Pressure != 190 {
		t.Fatalf("unexpected decay result %+v", got)
	}
}

func TestStandingWaterBlocksIgnition(t *testing.T) {
	var n [8]Cell
	got := ApplyTransitions(Cell{Solid: SolidGrass, Liquid: LiquidWater, Heat: 150}, n)
	if got.Gas == GasFire {
		t.Fatal("grass under water must not ignite")
	}
}
