//go:build ebiten

package app

import (
	"image/color"
	"time"

	"elemental-arena/internal/render"
	"elemental-arena/internal/sims/elemental"
	"elemental-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var presetKeys = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6}

var brushKeys = map[ebiten.Key]elemental.Payload{
	ebiten.KeyF: elemental.PayloadFire,
	ebiten.KeyW: elemental.PayloadWater,
	ebiten.KeyE: elemental.PayloadExplosive,
	ebiten.KeyO: elemental.PayloadOil,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	panel int
	last  time.Time
}

// New constructs a Game for the provided session.
func New(s *Session, scale, panelWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Arena.Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(s.Arena, scale),
		hud:     ui.NewHUD(s.Arena, panelWidth),
		scale:   scale,
		panel:   panelWidth,
	}
}

// Reset reinitializes the arena with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
}

// Update handles input, feeds the governor and advances the arena.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.SetPaused(!s.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(s.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		s.Arena.PushSnapshot(time.Now().Format("15:04:05"))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		s.Arena.Undo()
	}
	for key, p := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SetBrush(p)
		}
	}
	names := elemental.PresetNames()
	for i, key := range presetKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			_ = s.StartScenario(names[i])
		}
	}
	g.handleMouse()
	g.overlay.Update()

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if !s.Advance(ebiten.ActualFPS(), dt) && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	g.hud.Update(g.viewWidth(), s.Status(ebiten.ActualFPS(), ebiten.ActualTPS()))
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.session.Paint(x, y)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.session.Arena.Heat(x, y, 255, true)
	}
}

// Draw renders the arena, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a := g.session.Arena
	if g.painter.Paint(a.Cells(), a.Palette()) {
		if g.overlay.ShowHot() {
			render.Highlight(g.painter.Pixels(), a.Cells(), isHot, color.RGBA{R: 255, G: 40, B: 20, A: 255}, 0.5)
		}
		g.painter.Blit(screen, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

func isHot(v uint8) bool {
	m, hot := elemental.DecodeDisplay(v)
	return hot || m == elemental.MaterialFire
}

func (g *Game) viewWidth() int { return g.session.Arena.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Arena.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}
