//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"elemental-arena/internal/core"
	"elemental-arena/internal/sims/elemental"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windProvider interface {
	Wind() *elemental.WindGrid
}

// Overlay draws optional debugging visuals on top of the arena.
type Overlay struct {
	sim      core.Sim
	scale    int
	showWind bool
	showHot  bool

	pixel          *ebiten.Image
	windSamples    []windSample
	windCacheW     int
	windCacheH     int
	windCacheScale int
	windPixelSpan  float64
}

type windSample struct {
	x, y   int
	sx, sy float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showWind: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// ShowHot reports whether hot cells should be tinted.
func (o *Overlay) ShowHot() bool { return o.showHot }

// Update toggles overlay layers: 1 for wind arrows, 2 for the heat tint.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWind = !o.showWind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHot = !o.showHot
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showWind {
		if provider, ok := o.sim.(windProvider); ok {
			o.drawWindField(screen, provider.Wind(), size, scale)
		}
	}
}

func (o *Overlay) drawWindField(screen *ebiten.Image, wind *elemental.WindGrid, size core.Size, scale int) {
	if wind == nil || !o.ensureWindSamples(size, scale) {
		return
	}

	const (
		headAngle    = math.Pi / 6
		minThickness = 0.65
		maxThickness = 1.05
	)

	span := o.windPixelSpan
	minLength := span * 0.35
	maxLength := span * 0.7

	for _, sample := range o.windSamples {
		v := wind.Get(sample.x, sample.y)
		if v.Calm() {
			continue
		}
		nx, ny := float64(v.DX), float64(v.DY)
		norm := math.Hypot(nx, ny)
		nx, ny = nx/norm, ny/norm
		strength := float64(v.Strength) / 255
		length := minLength + (maxLength-minLength)*math.Sqrt(strength)
		headLength := math.Min(length*0.3, float64(scale)*4.5)
		tail := length * 0.4
		tipX := sample.sx + nx*(length-tail)
		tipY := sample.sy + ny*(length-tail)
		tailX := sample.sx - nx*tail
		tailY := sample.sy - ny*tail

		thickness := math.Max(1, float64(scale)*(minThickness+(maxThickness-minThickness)*strength))
		col := windColor(strength)
		o.drawLine(screen, tailX, tailY, tipX-nx*headLength, tipY-ny*headLength, thickness, col)

		angle := math.Atan2(ny, nx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, thickness*0.85, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, thickness*0.85, col)
	}
}

func (o *Overlay) ensureWindSamples(size core.Size, scale int) bool {
	if o.windCacheW == size.W && o.windCacheH == size.H && o.windCacheScale == scale && len(o.windSamples) > 0 {
		return true
	}

	const (
		targetSamples = 240.0
		minSpacing    = 6
		maxSpacing    = 20
	)
	spacing := int(math.Sqrt(float64(size.W*size.H) / targetSamples))
	spacing = max(minSpacing, min(maxSpacing, spacing))

	o.windSamples = o.windSamples[:0]
	for y := spacing / 2; y < size.H; y += spacing {
		for x := spacing / 2; x < size.W; x += spacing {
			o.windSamples = append(o.windSamples, windSample{
				x:  x,
				y:  y,
				sx: (float64(x) + 0.5) * float64(scale),
				sy: (float64(y) + 0.5) * float64(scale),
			})
		}
	}
	o.windCacheW = size.W
	o.windCacheH = size.H
	o.windCacheScale = scale
	o.windPixelSpan = float64(spacing * scale)
	return len(o.windSamples) > 0
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func windColor(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(math.Round(80 + 70*t)),
		G: uint8(math.Round(170 + 70*t)),
		B: uint8(math.Round(230 + 20*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}
