// Package scenario drives the arena from outside: it turns a catastrophe
// preset's turret mode into a repeatable stream of projectile impacts.
package scenario

import (
	"elemental-arena/internal/core"
	"elemental-arena/internal/sims/elemental"
)

// Target is what a turret shoots at.
type Target interface {
	Size() core.Size
	Impact(x, y int, p elemental.Payload) bool
}

// Shot is one projectile in flight.
type Shot struct {
	Serial  uint64
	X, Y    int
	Payload elemental.Payload
	Age     int
	Travel  int
}

// Turret fires volleys described by a TurretMode. All randomness comes from
// its own seeded generator, so equal seeds replay identical volleys.
type Turret struct {
	mode elemental.TurretMode
	rng  *core.RNG

	shots  []Shot
	tick   uint64
	serial uint64

	fired  int
	landed int
	culled int
}

// NewTurret returns a turret realizing mode with a generator seeded by seed.
func NewTurret(mode elemental.TurretMode, seed int64) *Turret {
	return &Turret{mode: normalizeMode(mode), rng: core.NewRNG(seed)}
}

func normalizeMode(m elemental.TurretMode) elemental.TurretMode {
	if m.Spread < 0 {
		m.Spread = 0
	}
	if m.Travel < 0 {
		m.Travel = 0
	}
	return m
}

// Mode returns the active turret mode.
func (t *Turret) Mode() elemental.TurretMode { return t.mode }

// SetMode switches to a new mode and restarts the volley clock. Shots already
// in flight still land.
func (t *Turret) SetMode(mode elemental.TurretMode) {
	t.mode = normalizeMode(mode)
	t.tick = 0
}

// Shots returns a copy of the shots in flight, oldest first.
func (t *Turret) Shots() []Shot {
	out := make([]Shot, len(t.shots))
	copy(out, t.shots)
	return out
}

// Fired returns the number of shots launched.
func (t *Turret) Fired() int { return t.fired }

// Landed returns the number of shots that reached the target.
func (t *Turret) Landed() int { return t.landed }

// Culled returns the number of shots removed by CullOldest.
func (t *Turret) Culled() int { return t.culled }

// Update ages every shot, lands those whose travel time is over and then fires
// the next volley if one is due. It returns the number of impacts.
func (t *Turret) Update(target Target) int {
	impacts := 0
	kept := t.shots[:0]
	for _, s := range t.shots {
		s.Age++
		if s.Age < s.Travel {
			kept = append(kept, s)
			continue
		}
		if target != nil && target.Impact(s.X, s.Y, s.Payload) {
			impacts++
		}
		t.landed++
	}
	t.shots = kept

	if target != nil && t.mode.Active() && t.tick%uint64(t.mode.Interval) == 0 {
		t.fire(target.Size())
	}
	t.tick++
	return impacts
}

func (t *Turret) fire(size core.Size) {
	m := t.mode
	for i := 0; i < m.Burst; i++ {
		x := m.AimX + t.rng.Range(-m.Spread, m.Spread)
		y := m.AimY + t.rng.Range(-m.Spread, m.Spread)
		t.serial++
		t.shots = append(t.shots, Shot{
			Serial:  t.serial,
			X:       clamp(x, 0, size.W-1),
			Y:       clamp(y, 0, size.H-1),
			Payload: m.Payload,
			Travel:  m.Travel,
		})
		t.fired++
	}
}

// LivingEntityCount reports the shots in flight.
func (t *Turret) LivingEntityCount() int { return len(t.shots) }

// CullOldest drops up to n of the oldest shots in flight.
func (t *Turret) CullOldest(n int) {
	if n <= 0 {
		return
	}
	if n > len(t.shots) {
		n = len(t.shots)
	}
	t.shots = append(t.shots[:0], t.shots[n:]...)
	t.culled += n
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
