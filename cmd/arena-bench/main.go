package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"elemental-arena/internal/app"
	"elemental-arena/internal/core"
	"elemental-arena/internal/sims/elemental"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML arena config (defaults when empty)")
	scenarioName := flag.String("scenario", "", "catastrophe preset to run: "+strings.Join(elemental.PresetNames(), ", "))
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	seed := flag.Int64("seed", 0, "terrain and turret seed (0 uses the config seed)")
	tps := flag.Int("tps", 0, "pace the run at this many ticks per second (0 runs flat out)")
	every := flag.Int("every", 100, "print a progress line every n ticks (0 disables)")
	load := flag.String("load", "", "restore this snapshot file before running")
	save := flag.String("snapshot", "", "write the final arena to this snapshot file")
	var overrides kvList
	flag.Var(&overrides, "set", "integer parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := elemental.DefaultConfig()
	if *configPath != "" {
		loaded, err := elemental.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	session := app.NewSession(cfg, *seed)
	arena := session.Arena
	if *load != "" {
		snap, hdr, err := elemental.ReadSnapshotFile(*load)
		if err != nil {
			log.Fatalf("load: %v", err)
		}
		if !arena.Restore(snap) {
			log.Fatalf("load: snapshot is %dx%d, arena is %dx%d", snap.Width, snap.Height, arena.Size().W, arena.Size().H)
		}
		log.Printf("restored %q from tick %d", hdr.Label, hdr.Tick)
	}
	if *scenarioName != "" {
		if err := session.StartScenario(*scenarioName); err != nil {
			log.Fatal(err)
		}
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("override %q is not key=value", kv)
		}
		n, err := strconv.Atoi(value)
		if err != nil || !arena.SetIntParameter(key, n) {
			log.Fatalf("override %q rejected", kv)
		}
	}

	rec := &elemental.TimingRecorder{}
	arena.SetHooks(rec)
	pace := core.NewFixedStep(*tps)
	meter := core.NewFixedStep(*tps)
	totals := elemental.TickStats{}
	start := time.Now()
	prev := start

	for int(arena.Tick()) < *ticks {
		if *tps > 0 && !pace.ShouldStep() {
			time.Sleep(pace.Step() / 4)
			continue
		}
		now := time.Now()
		dt := now.Sub(prev)
		prev = now
		meter.Observe(dt)
		fps := meter.Rate()
		if fps == 0 {
			fps = session.Governor.Config().RecoverFPS
		}
		session.Advance(fps, dt)
		accumulate(&totals, arena.LastStats())

		if *every > 0 && int(arena.Tick())%*every == 0 {
			st := arena.LastStats()
			fmt.Printf("tick %5d: non-empty %6d, ignitions %4d, steam %4d, explosions %2d, shots %3d, %.0f ticks/s\n",
				arena.Tick(), st.NonEmpty, st.Ignitions, st.SteamGenerated(), st.Explosions,
				session.Turret.LivingEntityCount(), meter.Rate())
		}
		for _, line := range arena.Log().Drain() {
			log.Print(line)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("\n%d ticks in %s (update avg %s, max %s)\n", arena.Tick(), elapsed.Round(time.Millisecond), rec.Average(), rec.Max)
	fmt.Printf("ignitions %d, steam %d, ashed %d, quenched %d, explosions %d (%d cells), wind moves %d\n",
		totals.Ignitions, totals.SteamGenerated(), totals.Ashed, totals.Quenched, totals.Explosions, totals.BlastCells, totals.Displaced)
	fmt.Printf("turret fired %d, landed %d, culled %d; governor emergencies %d\n",
		session.Turret.Fired(), session.Turret.Landed(), session.Turret.Culled(), session.Governor.Triggers())

	if *save != "" {
		snap := elemental.Capture(arena.Grid(), fmt.Sprintf("bench seed %d", session.Seed()))
		if err := elemental.WriteSnapshotFile(*save, snap, arena.Tick()); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		fmt.Printf("snapshot written to %s\n", *save)
	}
}

func accumulate(total *elemental.TickStats, st elemental.TickStats) {
	total.Displaced += st.Displaced
	total.Extinguished += st.Extinguished
	total.Evaporated += st.Evaporated
	total.Condensed += st.Condensed
	total.Ignitions += st.Ignitions
	total.Ashed += st.Ashed
	total.Quenched += st.Quenched
	total.Explosions += st.Explosions
	total.BlastCells += st.BlastCells
	total.NonEmpty = st.NonEmpty
}
