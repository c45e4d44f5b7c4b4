//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"elemental-arena/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type logProvider interface {
	LogEntries() []string
}

// HUD renders the side panel: steppable arena controls, the frame status and
// the newest event log entries.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
		h.controls = make([]hudControlState, len(arenaControls))
		for i, ctrl := range arenaControls {
			h.controls[i] = hudControlState{control: ctrl}
		}
		h.layoutControls()
	}
	return h
}

// Update refreshes the cached parameters and handles button clicks.
func (h *HUD) Update(panelOffsetX int, st Status) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = st
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawControls()
	y = h.drawLines(h.status.Lines(), y+sectionGap, color.RGBA{R: 200, G: 210, B: 200, A: 255})
	h.drawLog(y + sectionGap)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.intSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			dir = -1
		case pointInRect(px, my, state.plusRect):
			dir = 1
		default:
			continue
		}
		if target, changed := state.control.step(state.value, dir); changed {
			if h.intSetter.SetIntParameter(state.control.Key, target) {
				state.value = target
			}
		}
		return
	}
}

func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	bottom := headerY
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := "--"
		valueColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if state.hasValue {
			value = strconv.Itoa(state.value)
			valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canDown := state.control.step(state.value, -1)
		_, canUp := state.control.step(state.value, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
		bottom = state.top + lineHeight
	}
	return bottom
}

func (h *HUD) drawLines(lines []string, y int, col color.Color) int {
	face := basicfont.Face7x13
	cols := (h.width - 2*panelPadding) / glyphWidth
	for _, line := range lines {
		y += textLine
		text.Draw(h.panel, Truncate(line, cols), face, panelPadding, y, col)
	}
	return y
}

func (h *HUD) drawLog(y int) {
	provider, ok := h.sim.(logProvider)
	if !ok {
		return
	}
	rows := (h.lastHeight - y - panelPadding) / textLine
	h.drawLines(Tail(provider.LogEntries(), rows), y, color.RGBA{R: 170, G: 170, B: 190, A: 255})
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  control
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	sectionGap     = 10
	textLine       = 15
	glyphWidth     = 7
	controlsTop    = panelPadding + headerBaseline + 14
)
