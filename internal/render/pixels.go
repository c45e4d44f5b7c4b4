// Package render converts arena display bytes into RGBA pixels.
package render

import "image/color"

// FillPalette writes one RGBA pixel per display byte into buf. Bytes beyond the
// palette map to its last entry; an empty palette clears buf to transparent
// black. buf must hold 4*len(cells) bytes.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

// Highlight tints the pixels of every cell whose display byte satisfies pick.
// Used by the overlay to flag hot cells.
func Highlight(buf []byte, cells []uint8, pick func(uint8) bool, tint color.RGBA, weight float64) {
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	inv := 1 - weight
	for i, c := range cells {
		if !pick(c) {
			continue
		}
		px := buf[i*4 : i*4+4]
		px[0] = uint8(float64(px[0])*inv + float64(tint.R)*weight + 0.5)
		px[1] = uint8(float64(px[1])*inv + float64(tint.G)*weight + 0.5)
		px[2] = uint8(float64(px[2])*inv + float64(tint.B)*weight + 0.5)
	}
}
