package elemental

import "testing"

func windRow(w int, v WindVector) (*Grid, *WindGrid) {
	g := NewGrid(w, 1)
	wind := NewWindGrid(w, 1)
	wind.SetGlobal(v)
	return g, wind
}

func TestWindCalmIsNoop(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 0})
	c := Cell{Gas: GasFire, Heat: 200, Pressure: 90}
	got, _, ok := ApplyWind(g, wind, 0, 0, c)
	if ok || got != c {
		t.Fatalf("zero strength must not change anything, got %+v ok=%v", got, ok)
	}
	wind.SetGlobal(WindVector{Strength: 200})
	if got, _, ok := ApplyWind(g, wind, 0, 0, c); ok || got != c {
		t.Fatal("zero direction must not change anything")
	}
}

func TestWindExtremeTurnsFireIntoSmoke(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 230})
	retained, d, ok := ApplyWind(g, wind, 0, 0, Cell{Gas: GasFire, Heat: 100})
	if !ok {
		t.Fatal("expected displacement")
	}
	if d.Part.Gas != GasSmoke {
		t.Fatalf("extreme wind must carry smoke, got %v", d.Part.Gas)
	}
	if d.X != 1 || d.Y != 0 {
		t.Fatalf("unexpected target (%d,%d)", d.X, d.Y)
	}
	// 100*230/640 = 35 moved, then fanning adds 8.
	if retained.Gas != GasNone || retained.Heat != 73 || retained.Pressure != 6 {
		t.Fatalf("unexpected retained cell %+v", retained)
	}
}

func TestWindModerateCarriesFire(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 40})
	_, d, ok := ApplyWind(g, wind, 0, 0, Cell{Gas: GasFire})
	if !ok || d.Part.Gas != GasFire {
		t.Fatalf("moderate wind should carry the flame, got %+v ok=%v", d.Part, ok)
	}
	_, _, ok = ApplyWind(g, wind, 0, 0, Cell{Liquid: LiquidWater, Wet: 200})
	if ok {
		t.Fatal("liquid must not move below strength 126")
	}
}

func TestWindLiquidAdvection(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 150})
	retained, d, ok := ApplyWind(g, wind, 0, 0, Cell{Liquid: LiquidWater, Wet: 200})
	if !ok || d.Part.Wet != 100 || d.Part.Liquid != LiquidNone {
		t.Fatalf("expected 100 wet advected without the layer, got %+v", d.Part)
	}
	if retained.Wet != 100 || retained.Liquid != LiquidWater {
		t.Fatalf("unexpected retained %+v", retained)
	}

	retained, d, _ = ApplyWind(g, wind, 0, 0, Cell{Liquid: LiquidWater, Wet: 30})
	if d.Part.Wet != 40 || retained.Wet != 10 {
		t.Fatalf("minimums not applied: part %d retained %d", d.Part.Wet, retained.Wet)
	}

	wind.SetGlobal(WindVector{DX: 1, Strength: 190})
	retained, d, _ = ApplyWind(g, wind, 0, 0, Cell{Liquid: LiquidOil, Wet: 80})
	if d.Part.Liquid != LiquidOil || retained.Liquid != LiquidNone {
		t.Fatal("strong wind should relocate the liquid layer")
	}
}

func TestWindHeatFloorAndAsh(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 120})
	retained, d, ok := ApplyWind(g, wind, 0, 0, Cell{Heat: 3})
	if !ok || d.Part.Heat != 1 || retained.Heat != 2 {
		t.Fatalf("expected one heat unit moved, got part %d retained %d", d.Part.Heat, retained.Heat)
	}

	wind.SetGlobal(WindVector{DX: 1, Strength: 101})
	retained, d, ok = ApplyWind(g, wind, 0, 0, Cell{Solid: SolidAsh})
	if !ok || d.Part.Solid != SolidAsh || retained.Solid != SolidNone {
		t.Fatal("light ash should blow away above strength 100")
	}
	if _, _, ok := ApplyWind(g, wind, 0, 0, Cell{Solid: SolidEarth}); ok {
		t.Fatal("earth must not move and carries nothing")
	}
}

func TestWindBlockedAtArenaEdge(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 150})
	c := Cell{Gas: GasFire, Heat: 100}
	retained, _, ok := ApplyWind(g, wind, 2, 0, c)
	if ok {
		t.Fatal("nothing should leave the arena")
	}
	if retained.Gas != GasFire || retained.Heat != 108 || retained.Pressure != 6 {
		t.Fatalf("fanning should still apply at the edge, got %+v", retained)
	}
}

func TestMergeDisplacedRejectsOccupiedSlots(t *testing.T) {
	target := Cell{Solid: SolidEarth, Gas: GasSteam, Heat: 250}
	part := Cell{Solid: SolidAsh, Gas: GasSmoke, Liquid: LiquidWater, Heat: 10, Wet: 40}
	merged, rejected := MergeDisplaced(target, part)
	if merged.Gas != GasSteam || merged.Solid != SolidEarth || merged.Liquid != LiquidWater {
		t.Fatalf("unexpected merged slots %+v", merged)
	}
	if merged.Heat != 255 || merged.Wet != 40 {
		t.Fatalf("scalars must add saturating, got %+v", merged)
	}
	if rejected.Gas != GasSmoke || rejected.Solid != SolidAsh || rejected.Liquid != LiquidNone {
		t.Fatalf("unexpected rejected %+v", rejected)
	}
}

func TestWindPassMovesAndReturnsCollisions(t *testing.T) {
	g := NewGrid(3, 1)
	wind := NewWindGrid(3, 1)
	wind.Set(0, 0, WindVector{DX: 1, Strength: 50})
	wind.Set(2, 0, WindVector{DX: -5, Strength: 50})
	g.SetImmediate(0, 0, Cell{Gas: GasSmoke})
	g.SetImmediate(2, 0, Cell{Gas: GasSteam})
	copy(g.back, g.front)

	if n := ApplyWindPass(g, wind); n != 2 {
		t.Fatalf("expected two sources to push, got %d", n)
	}
	if g.Get(0, 0).Gas != GasSmoke {
		t.Fatal("the pass must write only the back buffer")
	}
	if got := g.Pending(1, 0).Gas; got != GasSmoke {
		t.Fatalf("first arrival should land, got %v", got)
	}
	if got := g.Pending(0, 0).Gas; got != GasNone {
		t.Fatalf("source should be emptied, got %v", got)
	}
	if got := g.Pending(2, 0).Gas; got != GasSteam {
		t.Fatalf("rejected steam should return to its source, got %v", got)
	}
	if wind.Get(2, 0).DX != -1 {
		t.Fatal("direction should clamp to a unit step")
	}
}

func TestWindPassChainCollisionKeepsEveryLayer(t *testing.T) {
	g, wind := windRow(3, WindVector{DX: 1, Strength: 60})
	g.SetImmediate(0, 0, Cell{Gas: GasSmoke})
	g.SetImmediate(1, 0, Cell{Gas: GasSteam})
	g.SetImmediate(2, 0, Cell{Gas: GasFire})
	copy(g.back, g.front)

	ApplyWindPass(g, wind)
	want := []Gas{GasSmoke, GasSteam, GasFire}
	for x, gas := range want {
		if got := g.Pending(x, 0).Gas; got != gas {
			t.Fatalf("cell %d: gas %v, want %v held in place", x, got, gas)
		}
	}
}

func TestWindPassBlockedLiquidStays(t *testing.T) {
	g, wind := windRow(2, WindVector{DX: 1, Strength: 200})
	g.SetImmediate(0, 0, Cell{Liquid: LiquidWater, Wet: 200})
	g.SetImmediate(1, 0, Cell{Liquid: LiquidOil, Wet: 60})
	copy(g.back, g.front)

	ApplyWindPass(g, wind)
	if g.Pending(0, 0).Liquid != LiquidWater || g.Pending(1, 0).Liquid != LiquidOil {
		t.Fatalf("liquids lost: %+v %+v", g.Pending(0, 0), g.Pending(1, 0))
	}
	if g.Pending(1, 0).Wet <= 60 {
		t.Fatal("moisture should still travel into the blocked cell")
	}
}

func TestWindPassReturnsOriginalGasOnRejection(t *testing.T) {
	g := NewGrid(2, 2)
	wind := NewWindGrid(2, 2)
	wind.Set(1, 0, WindVector{DY: 1, Strength: 60})
	wind.Set(0, 1, WindVector{DX: 1, Strength: 230})
	g.SetImmediate(1, 0, Cell{Gas: GasSteam})
	g.SetImmediate(0, 1, Cell{Gas: GasFire})
	copy(g.back, g.front)

	ApplyWindPass(g, wind)
	if got := g.Pending(1, 1).Gas; got != GasSteam {
		t.Fatalf("shared target gas %v, want steam", got)
	}
	if got := g.Pending(0, 1).Gas; got != GasFire {
		t.Fatalf("rejected flame came back as %v, want fire", got)
	}
}

func TestWindGridAccessors(t *testing.T) {
	wind := NewWindGrid(2, 2)
	if wind.Active() {
		t.Fatal("new field must be calm")
	}
	if (wind.Get(-1, 0) != WindVector{}) {
		t.Fatal("outside the field the air is calm")
	}
	MassiveWindstorm(wind, 0, 1, 90)
	if !wind.Active() || wind.Global().Strength != 90 || wind.Get(1, 1).DY != 1 {
		t.Fatal("global wind not applied")
	}
	wind.Clear()
	if wind.Active() {
		t.Fatal("Clear should calm the field")
	}
}
