package elemental

import (
	"time"

	"elemental-arena/internal/core"
)

// Arena owns the grid, the wind field and everything else a tick reads or
// writes. It implements core.Sim and is driven from a single goroutine.
type Arena struct {
	cfg Config

	grid   *Grid
	wind   *WindGrid
	events []DisplacementEvent

	log   *EventLog
	snaps *SnapshotManager
	hooks UpdateHooks
	rng   *core.RNG

	tick    uint64
	last    TickStats
	display []uint8
}

// New returns an arena with the provided dimensions using defaults.
func New(w, h int) *Arena {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an arena configured from the provided options. The
// grid starts empty; call Reset to lay out terrain.
func NewWithConfig(cfg Config) *Arena {
	cfg = cfg.normalized()
	a := &Arena{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height),
		wind:  NewWindGrid(cfg.Width, cfg.Height),
		log:   NewEventLog(cfg.LogCapacity),
		snaps: NewSnapshotManager(),
		rng:   core.NewRNG(cfg.Seed),
	}
	a.display = make([]uint8, cfg.Width*cfg.Height)
	return a
}

// Name returns the simulation identifier.
func (a *Arena) Name() string { return "elemental" }

// Size reports the grid dimensions.
func (a *Arena) Size() core.Size { return core.Size{W: a.grid.w, H: a.grid.h} }

// Cells exposes the display buffer built after every tick.
func (a *Arena) Cells() []uint8 { return a.display }

// Config returns the effective configuration.
func (a *Arena) Config() Config { return a.cfg }

// Grid exposes the arena grid.
func (a *Arena) Grid() *Grid { return a.grid }

// Wind exposes the wind field for external drivers.
func (a *Arena) Wind() *WindGrid { return a.wind }

// Log exposes the rolling event log.
func (a *Arena) Log() *EventLog { return a.log }

// LogEntries returns the event log from oldest to newest.
func (a *Arena) LogEntries() []string { return a.log.Entries() }

// Snapshots exposes the undo stack.
func (a *Arena) Snapshots() *SnapshotManager { return a.snaps }

// Tick returns the number of completed ticks since the last Reset.
func (a *Arena) Tick() uint64 { return a.tick }

// LastStats returns the summary of the most recent tick.
func (a *Arena) LastStats() TickStats { return a.last }

// SetHooks installs timing hooks around the update phase. nil removes them.
func (a *Arena) SetHooks(h UpdateHooks) { a.hooks = h }

// PendingEvents returns the number of queued displacement events.
func (a *Arena) PendingEvents() int { return len(a.events) }

// Reset lays out a fresh seeded arena. A zero seed falls back to the
// configured seed.
func (a *Arena) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	a.rng = core.NewRNG(effective)
	a.grid.Clear()
	a.wind.Clear()
	a.events = a.events[:0]
	a.log.Drain()
	a.tick = 0
	a.last = TickStats{}

	a.layTerrain()
	a.rebuildDisplay()
}

func (a *Arena) layTerrain() {
	g := a.grid
	p := a.cfg.Terrain
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := Cell{Solid: SolidEarth}
			switch {
			case a.rng.Chance(p.StoneChance):
				c.Solid = SolidStone
			case a.rng.Chance(p.GrassChance):
				c.Solid = SolidGrass
			}
			g.SetImmediate(x, y, c)
		}
	}
	for i := 0; i < p.WoodPatchCount; i++ {
		cx, cy := a.rng.IntN(g.w), a.rng.IntN(g.h)
		r := a.rng.Range(p.WoodPatchRadiusMin, p.WoodPatchRadiusMax)
		forDisc(g, cx, cy, r, func(x, y int) {
			g.SetImmediate(x, y, Cell{Solid: SolidWood})
		})
	}
	if p.PondRadius > 0 {
		cx, cy := a.rng.IntN(g.w), a.rng.IntN(g.h)
		forDisc(g, cx, cy, p.PondRadius, func(x, y int) {
			g.SetImmediate(x, y, Cell{Solid: SolidEarth, Liquid: LiquidWater, Wet: 255})
		})
	}
	copy(g.back, g.front)
}

// Step advances the arena by one tick.
func (a *Arena) Step() {
	if a.hooks != nil {
		a.hooks.BeginUpdate(a.tick)
	}
	start := time.Now()

	reclaim := (a.tick+1)%uint64(a.cfg.ReclaimInterval) == 0
	st := Tick(a.grid, a.wind, &a.events, reclaim)
	elapsed := time.Since(start)

	a.last = st
	a.logStats(st)
	a.rebuildDisplay()
	if a.hooks != nil {
		a.hooks.EndUpdate(a.tick, st, elapsed)
	}
	a.tick++
}

func (a *Arena) logStats(st TickStats) {
	if st.Extinguished > 0 {
		a.log.Addf("tick %d: Fire hit Water → generated %d Steam cells", a.tick, st.Extinguished)
	}
	if st.Evaporated > 0 {
		a.log.Addf("tick %d: Water boiled → generated %d Steam cells", a.tick, st.Evaporated)
	}
	if st.Explosions > 0 {
		a.log.Addf("tick %d: %d explosion(s) blasted %d cells", a.tick, st.Explosions, st.BlastCells)
	}
	if st.Ashed > 0 {
		a.log.Addf("tick %d: %d cells burned down to Ash", a.tick, st.Ashed)
	}
}

// QueueEvent schedules a displacement event for the next tick.
func (a *Arena) QueueEvent(ev DisplacementEvent) {
	a.events = append(a.events, ev)
}

// Impact deposits a projectile payload at (x, y). It reports false for
// out-of-range targets.
func (a *Arena) Impact(x, y int, p Payload) bool {
	if !a.grid.InBounds(x, y) {
		return false
	}
	if ev, ok := Deposit(a.grid, x, y, p); ok {
		a.QueueEvent(ev)
	}
	a.rebuildDisplayAt(x, y)
	return true
}

// Heat applies external heat to (x, y), as an ability or fireball would.
func (a *Arena) Heat(x, y int, amount uint8, violent bool) bool {
	c, ok := a.grid.GetChecked(x, y)
	if !ok {
		return false
	}
	a.grid.SetImmediate(x, y, ApplyHeat(c, amount, violent))
	a.rebuildDisplayAt(x, y)
	return true
}

// ApplyPreset runs a named catastrophe preset against the live grid.
func (a *Arena) ApplyPreset(name string) (TurretMode, bool) {
	mode, ok := ApplyPreset(name, a.grid, a.wind)
	if !ok {
		return TurretMode{}, false
	}
	copy(a.grid.back, a.grid.front)
	a.log.Addf("tick %d: preset %s applied", a.tick, name)
	a.rebuildDisplay()
	return mode, true
}

// PushSnapshot captures the committed grid under label.
func (a *Arena) PushSnapshot(label string) {
	a.snaps.Push(Capture(a.grid, label))
}

// Undo restores the most recent snapshot. It reports false when there is
// nothing to restore or the snapshot does not fit the grid.
func (a *Arena) Undo() bool {
	snap, ok := a.snaps.Pop()
	if !ok {
		return false
	}
	return a.Restore(snap)
}

// Restore copies snap into the grid, drops queued explosions and refreshes the
// display. A snapshot of another size is ignored and reports false.
func (a *Arena) Restore(snap ArenaSnapshot) bool {
	if !snap.Restore(a.grid) {
		return false
	}
	a.events = a.events[:0]
	a.log.Addf("tick %d: restored snapshot %q", a.tick, snap.Label)
	a.rebuildDisplay()
	return true
}

// EmergencyClear strips gas, liquid, pressure and moisture grid-wide and drops
// queued explosions. The safety governor calls it.
func (a *Arena) EmergencyClear() {
	a.grid.ClearVolatile()
	a.events = a.events[:0]
	a.log.Addf("tick %d: emergency cleanup cleared volatile state", a.tick)
	a.rebuildDisplay()
}

func init() {
	core.Register("elemental", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
