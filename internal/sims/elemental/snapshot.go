package elemental

// MaxSnapshots bounds how many captures a SnapshotManager keeps.
const MaxSnapshots = 5

// ArenaSnapshot is a full copy of the committed grid.
type ArenaSnapshot struct {
	Cells  []Cell
	Width  int
	Height int
	Label  string
}

// Capture copies the committed buffer of g.
func Capture(g *Grid, label string) ArenaSnapshot {
	cells := make([]Cell, len(g.front))
	copy(cells, g.front)
	return ArenaSnapshot{Cells: cells, Width: g.w, Height: g.h, Label: label}
}

// Restore writes the snapshot into both buffers of g. Snapshots captured from
// a grid of different dimensions are ignored and Restore reports false.
func (s ArenaSnapshot) Restore(g *Grid) bool {
	if s.Width != g.w || s.Height != g.h || len(s.Cells) != len(g.front) {
		return false
	}
	g.load(s.Cells)
	return true
}

// SnapshotManager keeps the most recent captures, evicting the oldest first.
type SnapshotManager struct {
	snaps []ArenaSnapshot
}

// NewSnapshotManager returns an empty manager.
func NewSnapshotManager() *SnapshotManager {
	return &SnapshotManager{snaps: make([]ArenaSnapshot, 0, MaxSnapshots)}
}

// Push stores s, dropping the oldest capture when full.
func (m *SnapshotManager) Push(s ArenaSnapshot) {
	if len(m.snaps) == MaxSnapshots {
		copy(m.snaps, m.snaps[1:])
		m.snaps = m.snaps[:MaxSnapshots-1]
	}
	m.snaps = append(m.snaps, s)
}

// Pop removes and returns the most recent capture.
func (m *SnapshotManager) Pop() (ArenaSnapshot, bool) {
	if len(m.snaps) == 0 {
		return ArenaSnapshot{}, false
	}
	last := m.snaps[len(m.snaps)-1]
	m.snaps[len(m.snaps)-1] = ArenaSnapshot{}
	m.snaps = m.snaps[:len(m.snaps)-1]
	return last, true
}

// Peek returns the most recent capture without removing it.
func (m *SnapshotManager) Peek() (ArenaSnapshot, bool) {
	if len(m.snaps) == 0 {
		return ArenaSnapshot{}, false
	}
	return m.snaps[len(m.snaps)-1], true
}

// Len returns the number of stored captures.
func (m *SnapshotManager) Len() int { return len(m.snaps) }

// Labels lists stored captures from oldest to newest.
func (m *SnapshotManager) Labels() []string {
	out := make([]string, len(m.snaps))
	for i, s := range m.snaps {
		out[i] = s.Label
	}
	return out
}

// Clear drops every capture.
func (m *SnapshotManager) Clear() {
	clear(m.snaps)
	m.snaps = m.snaps[:0]
}
