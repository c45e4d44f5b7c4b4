package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate and
// measures the rate actually achieved.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	smoothed float64
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if delta > 0 {
		f.observe(delta)
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Observe feeds an externally measured frame duration into the rate estimate.
func (f *FixedStep) Observe(frame time.Duration) {
	if frame > 0 {
		f.observe(frame)
	}
}

// Rate returns the exponentially smoothed frames-per-second estimate.
func (f *FixedStep) Rate() float64 { return f.smoothed }

func (f *FixedStep) observe(frame time.Duration) {
	inst := float64(time.Second) / float64(frame)
	if f.smoothed == 0 {
		f.smoothed = inst
		return
	}
	f.smoothed = f.smoothed*0.9 + inst*0.1
}
