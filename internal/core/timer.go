package core

import (
	"math"
	"time"
)

// Interval bounds in seconds between generations.
const (
	MinInterval     = 0.05
	MaxInterval     = 2.00
	IntervalStep    = 0.05
	DefaultInterval = 0.10
)

// Scheduler gates generation steps on accumulated frame time.
type Scheduler struct {
	interval    float64
	accumulated float64
}

// NewScheduler constructs a Scheduler with the given interval, clamped to
// [MinInterval, MaxInterval].
func NewScheduler(interval float64) *Scheduler {
	s := &Scheduler{}
	s.SetInterval(interval)
	return s
}

// Interval returns the seconds between steps.
func (s *Scheduler) Interval() float64 { return s.interval }

// Accumulated returns the time gathered since the last step.
func (s *Scheduler) Accumulated() float64 { return s.accumulated }

// SetInterval clamps v into range and returns the value stored.
func (s *Scheduler) SetInterval(v float64) float64 {
	if math.IsNaN(v) {
		v = DefaultInterval
	}
	// Keep repeated ±IntervalStep adjustments on clean decimals.
	v = math.Round(v*1000) / 1000
	s.interval = math.Min(math.Max(v, MinInterval), MaxInterval)
	return s.interval
}

// Faster shortens the interval by one IntervalStep.
func (s *Scheduler) Faster() float64 { return s.SetInterval(s.interval - IntervalStep) }

// Slower lengthens the interval by one IntervalStep.
func (s *Scheduler) Slower() float64 { return s.SetInterval(s.interval + IntervalStep) }

// Advance adds dt seconds and reports whether a step is due. At most one step
// is reported per call however large dt is; on a step the accumulator
// restarts from zero and any overshoot is dropped.
func (s *Scheduler) Advance(dt float64) bool {
	if dt > 0 {
		s.accumulated += dt
	}
	if s.accumulated >= s.interval {
		s.accumulated = 0
		return true
	}
	return false
}

// Reset discards accumulated time.
func (s *Scheduler) Reset() { s.accumulated = 0 }

// DeltaClock converts wall-clock reads into per-frame deltas for frame loops
// that do not report elapsed time themselves.
type DeltaClock struct {
	last time.Time
	now  func() time.Time
}

// NewDeltaClock returns a clock backed by time.Now.
func NewDeltaClock() *DeltaClock {
	return &DeltaClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns zero.
func (c *DeltaClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}
