//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in sync with the arena display bytes.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Pixels exposes the RGBA buffer filled by the last Paint so callers can
// tint it before Blit.
func (gp *GridPainter) Pixels() []byte { return gp.buf }

// Paint converts cells through palette into the pixel buffer.
func (gp *GridPainter) Paint(cells []uint8, palette []color.RGBA) bool {
	if len(cells) != gp.w*gp.h {
		return false
	}
	FillPalette(gp.buf, cells, palette)
	return true
}

// Blit uploads the pixel buffer and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
