package elemental

import (
	"fmt"
	"time"
)

// DefaultLogCapacity bounds the rolling reaction-event log.
const DefaultLogCapacity = 20

// EventLog is a bounded ring of human-readable simulation events. The arena
// appends to it and presentation code reads or drains it.
type EventLog struct {
	entries []string
	start   int
	size    int
}

// NewEventLog returns a log holding at most capacity entries. Non-positive
// capacities use DefaultLogCapacity.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &EventLog{entries: make([]string, capacity)}
}

// Add appends msg, overwriting the oldest entry when full.
func (l *EventLog) Add(msg string) {
	idx := (l.start + l.size) % len(l.entries)
	l.entries[idx] = msg
	if l.size < len(l.entries) {
		l.size++
		return
	}
	l.start = (l.start + 1) % len(l.entries)
}

// Addf appends a formatted entry.
func (l *EventLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of stored entries.
func (l *EventLog) Len() int { return l.size }

// Cap returns the maximum number of entries.
func (l *EventLog) Cap() int { return len(l.entries) }

// Entries returns stored entries from oldest to newest.
func (l *EventLog) Entries() []string {
	out := make([]string, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.entries[(l.start+i)%len(l.entries)]
	}
	return out
}

// Drain returns every entry and empties the log.
func (l *EventLog) Drain() []string {
	out := l.Entries()
	clear(l.entries)
	l.start, l.size = 0, 0
	return out
}

// UpdateHooks observes the CA update phase of each tick.
type UpdateHooks interface {
	BeginUpdate(tick uint64)
	EndUpdate(tick uint64, stats TickStats, elapsed time.Duration)
}

// TimingRecorder is an UpdateHooks that keeps update durations.
type TimingRecorder struct {
	Last    time.Duration
	Max     time.Duration
	Total   time.Duration
	Samples int
	Stats   TickStats
}

// BeginUpdate is a no-op; the arena measures elapsed time itself.
func (r *TimingRecorder) BeginUpdate(uint64) {}

// EndUpdate records one update.
func (r *TimingRecorder) EndUpdate(_ uint64, stats TickStats, elapsed time.Duration) {
	r.Last = elapsed
	if elapsed > r.Max {
		r.Max = elapsed
	}
	r.Total += elapsed
	r.Samples++
	r.Stats = stats
}

// Average returns the mean update duration.
func (r *TimingRecorder) Average() time.Duration {
	if r.Samples == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Samples)
}
