package core

import "time"

// maxPendingSteps caps how many ticks one frame may run so a stalled frame
// does not trigger a catch-up spiral.
const maxPendingSteps = 4

// FixedStep converts wall-clock time into a whole number of fixed-rate
// simulation ticks, decoupling wave time from the render frame rate.
type FixedStep struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

// NewFixedStep constructs a controller targeting the given ticks per second.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	return f
}

// SetTPS changes the tick rate. Safe to call between frames.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// DT returns the simulated seconds covered by one tick.
func (f *FixedStep) DT() float64 {
	return f.step.Seconds()
}

// Steps returns how many ticks the simulation should advance this frame.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.acc += now.Sub(f.last)
	f.last = now

	n := 0
	for f.acc >= f.step && n < maxPendingSteps {
		f.acc -= f.step
		n++
	}
	if n == maxPendingSteps {
		f.acc = 0
	}
	return n
}
