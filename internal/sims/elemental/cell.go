package elemental

// Cell is the per-cell value of the arena grid. The zero value is empty Air.
// All scalar fields saturate at 0 and 255.
type Cell struct {
	Solid  Solid
	Liquid Liquid
	Gas    Gas

	Heat     uint8
	Wet      uint8
	Pressure uint8
}

// IsEmpty reports whether the cell carries no material in any layer.
func (c Cell) IsEmpty() bool {
	return c.Solid == SolidNone && c.Liquid == LiquidNone && c.Gas == GasNone
}

// IsWaterlogged reports whether the cell is fully saturated. Waterlogged cells
// never ignite.
func (c Cell) IsWaterlogged() bool { return c.Wet == 255 }

// IsCombustible reports whether the solid layer can burn.
func (c Cell) IsCombustible() bool { return c.Solid.Combustible() }

// IsBurning reports whether the gas layer is fire.
func (c Cell) IsBurning() bool { return c.Gas == GasFire }

// HasFuel reports whether anything in the cell can keep a fire alive.
func (c Cell) HasFuel() bool { return c.Solid.Combustible() || c.Liquid.Fuel() }

// CanIgnite reports whether the cell may accumulate heat from burning
// neighbours and catch fire.
func (c Cell) CanIgnite() bool {
	return c.IsCombustible() && !c.IsWaterlogged() && c.Gas != GasSteam
}

// VisibleMaterial returns the layer a renderer should show: gas over liquid
// over solid, falling back to Air.
func (c Cell) VisibleMaterial() Material {
	switch {
	case c.Gas != GasNone:
		return c.Gas.Material()
	case c.Liquid != LiquidNone:
		return c.Liquid.Material()
	case c.Solid != SolidNone:
		return c.Solid.Material()
	}
	return MaterialAir
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

// clampInt saturates an int into the uint8 range.
func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
