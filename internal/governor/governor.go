// Package governor implements the frame-rate safety policy that protects the
// arena from runaway simulation cost. The host supplies the mechanisms: a
// Cleaner that wipes volatile grid state and a Population of live entities
// that can be culled oldest-first.
package governor

import "time"

// Config holds the hysteresis thresholds and the emergency cooldown.
type Config struct {
	LowFPS     float64       `yaml:"low_fps"`
	RecoverFPS float64       `yaml:"recover_fps"`
	Cooldown   time.Duration `yaml:"cooldown"`
	EntityCap  int           `yaml:"entity_cap"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		LowFPS:     30,
		RecoverFPS: 50,
		Cooldown:   3 * time.Second,
		EntityCap:  256,
	}
}

// Normalized fills invalid fields from DefaultConfig and keeps the recovery
// threshold above the trigger threshold.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.LowFPS <= 0 {
		c.LowFPS = def.LowFPS
	}
	if c.RecoverFPS <= c.LowFPS {
		c.RecoverFPS = c.LowFPS + (def.RecoverFPS - def.LowFPS)
	}
	if c.Cooldown < 0 {
		c.Cooldown = 0
	}
	if c.EntityCap < 0 {
		c.EntityCap = 0
	}
	return c
}

// Cleaner wipes volatile simulation state during an emergency.
type Cleaner interface {
	EmergencyClear()
}

// Population is a host-tracked set of entities, such as projectiles or
// particles, that the governor may trim.
type Population interface {
	LivingEntityCount() int
	CullOldest(n int)
}

// Transition reports what an Update did.
type Transition uint8

const (
	// Steady means the governor stayed out of emergency.
	Steady Transition = iota
	// Entered means this update triggered emergency cleanup.
	Entered
	// Holding means the governor remained in emergency.
	Holding
	// Recovered means this update left emergency.
	Recovered
)

func (t Transition) String() string {
	switch t {
	case Steady:
		return "steady"
	case Entered:
		return "entered"
	case Holding:
		return "holding"
	case Recovered:
		return "recovered"
	}
	return "unknown"
}

// Governor is the emergency state machine. The zero value is not usable; call
// New.
type Governor struct {
	cfg       Config
	emergency bool
	remaining time.Duration
	triggers  int
	culled    int
}

// New returns a governor in the steady state.
func New(cfg Config) *Governor {
	return &Governor{cfg: cfg.Normalized()}
}

// Config returns the effective configuration.
func (g *Governor) Config() Config { return g.cfg }

// InEmergency reports whether emergency mode is active.
func (g *Governor) InEmergency() bool { return g.emergency }

// Cooldown returns the time left before recovery is allowed.
func (g *Governor) Cooldown() time.Duration { return g.remaining }

// Triggers returns how many times emergency mode has been entered.
func (g *Governor) Triggers() int { return g.triggers }

// Culled returns the total number of entities removed.
func (g *Governor) Culled() int { return g.culled }

// Update feeds one smoothed FPS sample and the time elapsed since the last
// sample. Dropping below LowFPS clears the arena, trims the population to
// EntityCap and starts the cooldown. Emergency ends only once FPS is above
// RecoverFPS and the cooldown has run out. Either collaborator may be nil.
// A non-positive fps means no sample is available yet and changes nothing.
func (g *Governor) Update(fps float64, dt time.Duration, cleaner Cleaner, pop Population) Transition {
	if fps <= 0 {
		if g.emergency {
			return Holding
		}
		return Steady
	}
	if !g.emergency {
		if fps >= g.cfg.LowFPS {
			return Steady
		}
		g.emergency = true
		g.remaining = g.cfg.Cooldown
		g.triggers++
		if cleaner != nil {
			cleaner.EmergencyClear()
		}
		g.enforceCap(pop)
		return Entered
	}

	if dt > 0 {
		g.remaining -= dt
		if g.remaining < 0 {
			g.remaining = 0
		}
	}
	if fps > g.cfg.RecoverFPS && g.remaining == 0 {
		g.emergency = false
		return Recovered
	}
	g.enforceCap(pop)
	return Holding
}

func (g *Governor) enforceCap(pop Population) {
	if pop == nil {
		return
	}
	excess := pop.LivingEntityCount() - g.cfg.EntityCap
	if excess <= 0 {
		return
	}
	pop.CullOldest(excess)
	g.culled += excess
}
