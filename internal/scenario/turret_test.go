package scenario

import (
	"slices"
	"testing"

	"elemental-arena/internal/core"
	"elemental-arena/internal/governor"
	"elemental-arena/internal/sims/elemental"
)

var _ governor.Population = (*Turret)(nil)
var _ Target = (*elemental.Arena)(nil)

type impact struct {
	x, y int
	p    elemental.Payload
}

type recordingTarget struct {
	size core.Size
	hits []impact
}

func (r *recordingTarget) Size() core.Size { return r.size }

func (r *recordingTarget) Impact(x, y int, p elemental.Payload) bool {
	r.hits = append(r.hits, impact{x, y, p})
	return true
}

func barrage() elemental.TurretMode {
	return elemental.TurretMode{
		Name:     "test",
		Payload:  elemental.PayloadWater,
		Interval: 3,
		Burst:    4,
		Spread:   5,
		Travel:   2,
		AimX:     10,
		AimY:     10,
	}
}

func TestTurretSameSeedReplays(t *testing.T) {
	a := &recordingTarget{size: core.Size{W: 20, H: 20}}
	b := &recordingTarget{size: core.Size{W: 20, H: 20}}
	ta := NewTurret(barrage(), 11)
	tb := NewTurret(barrage(), 11)
	for i := 0; i < 30; i++ {
		ta.Update(a)
		tb.Update(b)
	}
	if len(a.hits) == 0 {
		t.Fatal("turret never hit anything")
	}
	if !slices.Equal(a.hits, b.hits) {
		t.Fatal("equal seeds produced different impacts")
	}
	for _, h := range a.hits {
		if h.x < 0 || h.x >= 20 || h.y < 0 || h.y >= 20 {
			t.Fatalf("impact outside target: %+v", h)
		}
		if h.x < 5 || h.x > 15 || h.y < 5 || h.y > 15 {
			t.Fatalf("impact beyond spread: %+v", h)
		}
	}
}

func TestTurretVolleyTiming(t *testing.T) {
	target := &recordingTarget{size: core.Size{W: 20, H: 20}}
	tr := NewTurret(barrage(), 1)

	tr.Update(target)
	if tr.Fired() != 4 || tr.LivingEntityCount() != 4 {
		t.Fatalf("first update should fire a volley, fired=%d", tr.Fired())
	}
	tr.Update(target)
	if len(target.hits) != 0 {
		t.Fatal("shots landed before their travel time")
	}
	if got := tr.Update(target); got != 4 {
		t.Fatalf("expected 4 impacts on the third update, got %d", got)
	}
	if tr.Landed() != 4 || tr.LivingEntityCount() != 0 {
		t.Fatalf("landed=%d living=%d", tr.Landed(), tr.LivingEntityCount())
	}
	tr.Update(target)
	if tr.Fired() != 8 {
		t.Fatalf("second volley due on tick 3, fired=%d", tr.Fired())
	}
}

func TestTurretInactiveModeIsSilent(t *testing.T) {
	target := &recordingTarget{size: core.Size{W: 8, H: 8}}
	tr := NewTurret(elemental.TurretMode{Name: "great_flood"}, 3)
	for i := 0; i < 10; i++ {
		tr.Update(target)
	}
	if tr.Fired() != 0 || len(target.hits) != 0 {
		t.Fatal("inactive mode fired")
	}
}

func TestTurretCullOldest(t *testing.T) {
	mode := barrage()
	mode.Interval = 1
	mode.Travel = 100
	target := &recordingTarget{size: core.Size{W: 20, H: 20}}
	tr := NewTurret(mode, 9)
	for i := 0; i < 3; i++ {
		tr.Update(target)
	}
	shots := tr.Shots()
	if len(shots) != 12 {
		t.Fatalf("expected 12 shots in flight, got %d", len(shots))
	}

	tr.CullOldest(5)
	left := tr.Shots()
	if len(left) != 7 || tr.Culled() != 5 {
		t.Fatalf("living=%d culled=%d", len(left), tr.Culled())
	}
	if left[0].Serial != shots[5].Serial {
		t.Fatalf("culled the wrong shots: first survivor %d", left[0].Serial)
	}
	for i := 1; i < len(left); i++ {
		if left[i].Age > left[i-1].Age {
			t.Fatal("survivors are not ordered oldest first")
		}
	}
	tr.CullOldest(100)
	if tr.LivingEntityCount() != 0 {
		t.Fatal("cull beyond population left shots")
	}
}

func TestTurretGovernedByCap(t *testing.T) {
	mode := barrage()
	mode.Interval = 1
	mode.Travel = 50
	tr := NewTurret(mode, 4)
	target := &recordingTarget{size: core.Size{W: 20, H: 20}}
	for i := 0; i < 10; i++ {
		tr.Update(target)
	}
	g := governor.New(governor.Config{LowFPS: 30, RecoverFPS: 50, EntityCap: 10})
	if g.Update(12, 0, nil, tr) != governor.Entered {
		t.Fatal("governor should enter emergency")
	}
	if tr.LivingEntityCount() != 10 {
		t.Fatalf("population not capped: %d", tr.LivingEntityCount())
	}
}

func TestTurretAgainstArena(t *testing.T) {
	arena := elemental.New(40, 20)
	arena.Reset(2)
	mode, ok := arena.ApplyPreset(elemental.PresetInterceptionChaos)
	if !ok {
		t.Fatal("preset rejected")
	}
	tr := NewTurret(mode, 2)
	impacts := 0
	for i := 0; i < 20; i++ {
		impacts += tr.Update(arena)
		arena.Step()
	}
	if impacts == 0 {
		t.Fatal("no fireballs reached the arena")
	}
}
