package core

import "testing"

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresInvalid(t *testing.T) {
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)
	if _, ok := Lookup(""); ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Lookup("nil-factory"); ok {
		t.Fatal("nil factory must not register")
	}

	Register("zz-stub", func(map[string]string) Sim { return stubSim{} })
	f, ok := Lookup("zz-stub")
	if !ok || f(nil).Name() != "stub" {
		t.Fatal("registered factory not returned")
	}
	names := Names()
	if names[len(names)-1] != "zz-stub" {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "8"}}},
		{Name: "B", Params: []Parameter{{Key: "tick", Value: "3"}}},
	}}
	p, ok := snap.Lookup("tick")
	if !ok || p.Value != "3" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}
