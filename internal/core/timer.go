package core

import "time"

// FrameClock measures the real time elapsed between ticks, clamped to a
// maximum delta so a stalled frame cannot trigger a runaway number of physics
// substeps on the next one.
type FrameClock struct {
	maxDelta time.Duration
	last     time.Time
}

// NewFrameClock constructs a clock with the provided delta cap.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = time.Second / 30
	}
	return &FrameClock{maxDelta: maxDelta}
}

// Delta returns the seconds elapsed since the previous call, clamped to the
// cap. The first call returns zero.
func (c *FrameClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	if delta < 0 {
		delta = 0
	}
	return delta.Seconds()
}
