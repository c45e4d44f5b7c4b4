package elemental

import "testing"

func TestGreatFloodAndFireJumpDiscs(t *testing.T) {
	g := NewGrid(11, 11)
	GreatFlood(g, 5, 5, 2)
	if c := g.Get(7, 5); c.Liquid != LiquidWater || c.Wet != 255 {
		t.Fatalf("disc edge should be flooded, got %+v", c)
	}
	if !g.Get(7, 7).IsEmpty() {
		t.Fatal("corner outside the disc should stay dry")
	}

	ForestFireJump(g, 0, 0, 1)
	if c := g.Get(0, 1); c.Gas != GasFire || c.Heat != 255 {
		t.Fatalf("fire disc not applied, got %+v", c)
	}
	if g.Pending(0, 1).Gas == GasFire {
		t.Fatal("presets write the front buffer directly")
	}
}

func TestFuelFieldBorder(t *testing.T) {
	g := NewGrid(8, 8)
	FuelField(g, 1, 1, 5, 4)
	if g.Get(1, 1).Solid != SolidStone || g.Get(5, 4).Solid != SolidStone {
		t.Fatal("corners should be stone")
	}
	if g.Get(3, 2).Solid != SolidWood {
		t.Fatal("interior should be wood")
	}
	if !g.Get(6, 1).IsEmpty() || !g.Get(1, 5).IsEmpty() {
		t.Fatal("field must not extend past its rectangle")
	}
	FuelField(g, 6, 6, 5, 5) // clipped, must not panic
}

func TestCompositePresetsReturnTurretModes(t *testing.T) {
	g := NewGrid(40, 20)
	wind := NewWindGrid(40, 20)

	mode := InterceptionChaos(g, wind)
	if !mode.Active() || mode.Payload != PayloadFire || mode.AimX != 20 {
		t.Fatalf("unexpected interception mode %+v", mode)
	}
	if wind.Global().Strength != 150 {
		t.Fatal("interception chaos should raise a crosswind")
	}

	mode = Doomsday(g, wind)
	if mode.Payload != PayloadExplosive || mode.Burst != 5 {
		t.Fatalf("unexpected doomsday mode %+v", mode)
	}
	if wind.Global().Strength != 230 || wind.Global().DX != -1 {
		t.Fatal("doomsday wind not applied")
	}
}

func TestApplyPresetByName(t *testing.T) {
	for _, name := range PresetNames() {
		g := NewGrid(16, 16)
		wind := NewWindGrid(16, 16)
		mode, ok := ApplyPreset(name, g, wind)
		if !ok || mode.Name != name {
			t.Fatalf("preset %s not applied: %+v", name, mode)
		}
		if g.NonEmptyCount() == 0 && !wind.Active() {
			t.Fatalf("preset %s changed nothing", name)
		}
	}
	if _, ok := ApplyPreset("apocalypse", NewGrid(2, 2), NewWindGrid(2, 2)); ok {
		t.Fatal("unknown preset accepted")
	}
}
