package elemental

import "testing"

func TestDepositPayloads(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(Cell{Solid: SolidGrass})

	if _, ok := Deposit(g, 0, 0, PayloadFire); ok {
		t.Fatal("fire should not queue an event")
	}
	if c := g.Get(0, 0); !c.IsBurning() || c.Heat != 255 {
		t.Fatalf("fire payload: %+v", c)
	}

	Deposit(g, 1, 0, PayloadWater)
	if c := g.Get(1, 0); c.Liquid != LiquidWater || c.Wet != 200 {
		t.Fatalf("water payload: %+v", c)
	}

	Deposit(g, 2, 0, PayloadOil)
	if c := g.Get(2, 0); c.Liquid != LiquidOil || !c.HasFuel() {
		t.Fatalf("oil payload: %+v", c)
	}

	before := g.Get(3, 3)
	ev, ok := Deposit(g, 3, 3, PayloadExplosive)
	if !ok || !ev.IsViolent || ev.OriginX != 3 || ev.OriginY != 3 || ev.Radius != 3 {
		t.Fatalf("explosive payload event %+v", ev)
	}
	if g.Get(3, 3) != before {
		t.Fatal("explosive payload must not touch the cell")
	}

	if _, ok := Deposit(g, 9, 9, PayloadExplosive); ok {
		t.Fatal("out-of-range explosive accepted")
	}
}

func TestWaterloggedCellResistsFireball(t *testing.T) {
	g := NewGrid(1, 1)
	g.SetImmediate(0, 0, Cell{Solid: SolidWood, Liquid: LiquidWater, Wet: 255})
	Deposit(g, 0, 0, PayloadFire)
	if g.Get(0, 0).IsBurning() {
		t.Fatal("waterlogged wood caught fire")
	}
}

func TestParsePayload(t *testing.T) {
	for _, name := range []string{"fire", "water", "explosive", "oil"} {
		p, ok := ParsePayload(name)
		if !ok || p.String() != name {
			t.Fatalf("ParsePayload(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := ParsePayload("plasma"); ok {
		t.Fatal("unknown payload accepted")
	}
}
