package app

import (
	"fmt"
	"time"

	"elemental-arena/internal/governor"
	"elemental-arena/internal/scenario"
	"elemental-arena/internal/sims/elemental"
	"elemental-arena/internal/ui"
)

// Session bundles the arena with its external drivers: the scenario turret
// and the safety governor. Both the GUI and the bench runner advance it.
type Session struct {
	Arena    *elemental.Arena
	Turret   *scenario.Turret
	Governor *governor.Governor

	seed   int64
	brush  elemental.Payload
	paused bool
	last   governor.Transition
}

// NewSession builds a reset arena from cfg. A zero seed uses cfg.Seed.
func NewSession(cfg elemental.Config, seed int64) *Session {
	if seed == 0 {
		seed = cfg.Seed
	}
	s := &Session{
		Arena:    elemental.NewWithConfig(cfg),
		Governor: governor.New(cfg.Governor),
		seed:     seed,
		brush:    elemental.PayloadFire,
	}
	s.Reset(seed)
	return s
}

// Reset lays out fresh terrain and silences the turret.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.Arena.Reset(seed)
	s.Turret = scenario.NewTurret(elemental.TurretMode{}, seed)
}

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// StartScenario applies a preset and arms the turret with its mode. The
// turret reuses the session seed so runs replay exactly.
func (s *Session) StartScenario(name string) error {
	mode, ok := s.Arena.ApplyPreset(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	s.Turret = scenario.NewTurret(mode, s.seed)
	return nil
}

// SetBrush selects the payload deposited by Paint.
func (s *Session) SetBrush(p elemental.Payload) { s.brush = p }

// Brush returns the selected payload.
func (s *Session) Brush() elemental.Payload { return s.brush }

// Paint deposits the brush payload at a grid cell.
func (s *Session) Paint(x, y int) bool { return s.Arena.Impact(x, y, s.brush) }

// Paused reports whether Advance skips the simulation.
func (s *Session) Paused() bool { return s.paused }

// SetPaused pauses or resumes the simulation.
func (s *Session) SetPaused(p bool) { s.paused = p }

// Advance runs the governor on the latest frame rate, then, unless paused,
// the turret and one arena tick. It reports whether the arena stepped.
func (s *Session) Advance(fps float64, dt time.Duration) bool {
	s.last = s.Governor.Update(fps, dt, s.Arena, s.Turret)
	if s.paused {
		return false
	}
	s.StepOnce()
	return true
}

// StepOnce fires the turret and advances the arena regardless of pause.
func (s *Session) StepOnce() {
	s.Turret.Update(s.Arena)
	s.Arena.Step()
}

// LastTransition returns what the governor did on the last Advance.
func (s *Session) LastTransition() governor.Transition { return s.last }

// Status summarizes the session for the HUD.
func (s *Session) Status(fps, tps float64) ui.Status {
	return ui.Status{
		FPS:       fps,
		TPS:       tps,
		Paused:    s.paused,
		Emergency: s.Governor.InEmergency(),
		Cooldown:  s.Governor.Cooldown(),
		Triggers:  s.Governor.Triggers(),
		Shots:     s.Turret.LivingEntityCount(),
		Mode:      s.Turret.Mode().Name,
		Payload:   s.brush.String(),
	}
}
