package core

import (
	"time"

	pcore "godforce-ca/pkg/core"
)

// FixedStep helps run frame updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the loop should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Scheduler advances simulated time by a fixed amount every frame and gates
// automaton ticks with a random draw, so ticks land on a random subset of
// frames at an average of Rate per frame.
type Scheduler struct {
	Step float64
	Rate float64

	elapsed float64
}

// NewScheduler returns a Scheduler starting at time zero.
func NewScheduler(step, rate float64) *Scheduler {
	return &Scheduler{Step: step, Rate: rate}
}

// Elapsed returns the simulated time accumulated so far.
func (s *Scheduler) Elapsed() float64 { return s.elapsed }

// ShouldTick reports whether a tick should run given a uniform draw u in
// [0, 1).
func (s *Scheduler) ShouldTick(u float64) bool {
	return u < s.Rate
}

// Advance moves time forward by one frame and decides whether the automaton
// ticks on this frame.
func (s *Scheduler) Advance(rng *pcore.RNG) (elapsed float64, tick bool) {
	s.elapsed += s.Step
	return s.elapsed, s.ShouldTick(rng.Float64())
}
