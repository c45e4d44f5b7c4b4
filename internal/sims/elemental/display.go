package elemental

import "image/color"

const (
	displayMaterialMask = 0x0f
	displayHotBit       = 0x10
	displayHotAbove     = 150
)

var arenaPalette = buildArenaPalette()

// Palette exposes the colours indexed by the display bytes from Cells.
func (a *Arena) Palette() []color.RGBA { return arenaPalette }

// EncodeDisplay packs the visible material and a hot flag into one byte.
func EncodeDisplay(c Cell) uint8 {
	v := uint8(c.VisibleMaterial()) & displayMaterialMask
	if c.Heat > displayHotAbove && c.Gas != GasFire {
		v |= displayHotBit
	}
	return v
}

// DecodeDisplay unpacks a display byte.
func DecodeDisplay(v uint8) (Material, bool) {
	return Material(v & displayMaterialMask), v&displayHotBit != 0
}

func buildArenaPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		m, hot := DecodeDisplay(uint8(i))
		base := materialColor(m)
		if hot {
			base = blendColors(base, color.RGBA{R: 255, G: 110, B: 30, A: 255}, 0.45)
		}
		palette[i] = base
	}
	return palette
}

func materialColor(m Material) color.RGBA {
	switch m {
	case MaterialEarth:
		return color.RGBA{R: 92, G: 64, B: 40, A: 255}
	case MaterialStone:
		return color.RGBA{R: 128, G: 128, B: 134, A: 255}
	case MaterialMud:
		return color.RGBA{R: 70, G: 50, B: 34, A: 255}
	case MaterialAsh:
		return color.RGBA{R: 60, G: 60, B: 62, A: 255}
	case MaterialRubble:
		return color.RGBA{R: 104, G: 96, B: 88, A: 255}
	case MaterialGrass:
		return color.RGBA{R: 70, G: 150, B: 70, A: 255}
	case MaterialWood:
		return color.RGBA{R: 120, G: 82, B: 44, A: 255}
	case MaterialWater:
		return color.RGBA{R: 40, G: 90, B: 200, A: 255}
	case MaterialOil:
		return color.RGBA{R: 32, G: 28, B: 24, A: 255}
	case MaterialSteam:
		return color.RGBA{R: 210, G: 215, B: 225, A: 255}
	case MaterialSmoke:
		return color.RGBA{R: 95, G: 95, B: 100, A: 255}
	case MaterialFire:
		return color.RGBA{R: 255, G: 130, B: 40, A: 255}
	}
	return color.RGBA{R: 12, G: 12, B: 16, A: 255}
}

func blendColors(base, overlay color.RGBA, w float64) color.RGBA {
	if w <= 0 {
		return base
	}
	if w >= 1 {
		return overlay
	}
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

func (a *Arena) rebuildDisplay() {
	for i, c := range a.grid.front {
		a.display[i] = EncodeDisplay(c)
	}
}

func (a *Arena) rebuildDisplayAt(x, y int) {
	if !a.grid.InBounds(x, y) {
		return
	}
	idx := a.grid.Index(x, y)
	a.display[idx] = EncodeDisplay(a.grid.front[idx])
}
