package elemental

// Solid enumerates the solid layer of a cell. The zero value means no solid.
type Solid uint8

// Liquid enumerates the liquid layer of a cell. The zero value means no liquid.
type Liquid uint8

// Gas enumerates the gas layer of a cell. The zero value means no gas.
type Gas uint8

const (
	SolidNone Solid = iota
	SolidEarth
	SolidStone
	SolidMud
	SolidAsh
	SolidRubble
	SolidGrass
	SolidWood
)

const (
	LiquidNone Liquid = iota
	LiquidWater
	LiquidOil
)

const (
	GasNone Gas = iota
	GasSteam
	GasSmoke
	GasFire
)

// Material is the flattened view of whatever layer is visible in a cell.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialEarth
	MaterialStone
	MaterialMud
	MaterialAsh
	MaterialRubble
	MaterialGrass
	MaterialWood
	MaterialWater
	MaterialOil
	MaterialSteam
	MaterialSmoke
	MaterialFire

	materialCount
)

var materialNames = [materialCount]string{
	MaterialAir:    "Air",
	MaterialEarth:  "Earth",
	MaterialStone:  "Stone",
	MaterialMud:    "Mud",
	MaterialAsh:    "Ash",
	MaterialRubble: "Rubble",
	MaterialGrass:  "Grass",
	MaterialWood:   "Wood",
	MaterialWater:  "Water",
	MaterialOil:    "Oil",
	MaterialSteam:  "Steam",
	MaterialSmoke:  "Smoke",
	MaterialFire:   "Fire",
}

func (m Material) String() string {
	if m >= materialCount {
		return "Unknown"
	}
	return materialNames[m]
}

// Material maps the solid onto the flattened material enum.
func (s Solid) Material() Material {
	if s == SolidNone || s > SolidWood {
		return MaterialAir
	}
	return Material(s)
}

func (s Solid) String() string {
	if s == SolidNone {
		return "None"
	}
	return s.Material().String()
}

// FlashPoint returns the heat at which the solid ignites, if it has one.
func (s Solid) FlashPoint() (uint8, bool) {
	switch s {
	case SolidGrass:
		return 100, true
	case SolidWood:
		return 150, true
	case SolidStone:
		return 250, true
	}
	return 0, false
}

// Combustible reports whether the solid can burn. Stone has a flash point but
// never burns.
func (s Solid) Combustible() bool {
	return s == SolidGrass || s == SolidWood
}

// Material maps the liquid onto the flattened material enum.
func (l Liquid) Material() Material {
	switch l {
	case LiquidWater:
		return MaterialWater
	case LiquidOil:
		return MaterialOil
	}
	return MaterialAir
}

func (l Liquid) String() string {
	if l == LiquidNone {
		return "None"
	}
	return l.Material().String()
}

// Fuel reports whether the liquid feeds a fire.
func (l Liquid) Fuel() bool { return l == LiquidOil }

// Material maps the gas onto the flattened material enum.
func (g Gas) Material() Material {
	switch g {
	case GasSteam:
		return MaterialSteam
	case GasSmoke:
		return MaterialSmoke
	case GasFire:
		return MaterialFire
	}
	return MaterialAir
}

func (g Gas) String() string {
	if g == GasNone {
		return "None"
	}
	return g.Material().String()
}

// Flammable reports whether the gas is a flame that wind can fan or smother.
func (g Gas) Flammable() bool { return g == GasFire }
