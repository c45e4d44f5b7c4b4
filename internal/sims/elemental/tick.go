package elemental

// TickStats summarizes what one tick did.
type TickStats struct {
	Displaced    int // cells that pushed material or energy downwind
	Extinguished int // fires turned to steam by wet neighbours
	Evaporated   int
	Condensed    int
	Ignitions    int
	Ashed        int
	Quenched     int
	Explosions   int
	BlastCells   int
	NonEmpty     int
}

// SteamGenerated counts cells that produced steam this tick.
func (s TickStats) SteamGenerated() int { return s.Extinguished + s.Evaporated }

// Tick advances the arena by one step. Stages run in a fixed order: the wind
// pass (if any vector is active) is committed first, then every cell runs
// reactions, transitions and decay against the committed neighbourhood into
// the back buffer, explosion triggers found in that result are queued after
// any externally supplied events, all queued events are applied, and finally
// the buffers swap. events is emptied.
func Tick(g *Grid, wind *WindGrid, events *[]DisplacementEvent, reclaim bool) TickStats {
	var st TickStats
	if wind != nil && wind.Active() {
		st.Displaced = ApplyWindPass(g, wind)
		g.SwapBuffers()
	}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			cur := g.front[idx]
			n := MooreNeighbors(g, x, y)

			next := ApplyReactions(cur, n)
			if cur.Gas == GasFire && next.Gas == GasSteam {
				st.Extinguished++
			}
			next, eff := applyTransitions(next, n)
			st.count(eff)
			g.back[idx] = ApplyFullDecayCycle(next, reclaim)
		}
	}

	var queued []DisplacementEvent
	if events != nil {
		queued = *events
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if ev, ok := CheckExplosionTrigger(g.back[g.Index(x, y)], x, y); ok {
				queued = append(queued, ev)
			}
		}
	}
	for _, ev := range queued {
		st.Explosions++
		st.BlastCells += ApplyExplosiveDisplacement(g, ev)
	}
	if events != nil {
		*events = queued[:0]
	}

	g.SwapBuffers()
	st.NonEmpty = g.NonEmptyCount()
	return st
}

func (s *TickStats) count(eff TransitionEffect) {
	if eff.Has(EffectEvaporated) {
		s.Evaporated++
	}
	if eff.Has(EffectCondensed) {
		s.Condensed++
	}
	if eff.Has(EffectIgnited) {
		s.Ignitions++
	}
	if eff.Has(EffectAshed) {
		s.Ashed++
	}
	if eff.Has(EffectQuenched) {
		s.Quenched++
	}
}
