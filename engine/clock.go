package engine

import "time"

// Clock measures wall-clock time between ticks and caps each step.
type Clock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta float64

	fps float64
}

// NewClock returns a Clock that never reports more than maxDelta seconds per tick.
func NewClock(maxDelta float64) *Clock {
	return NewClockWithSource(maxDelta, time.Now)
}

// NewClockWithSource is NewClock with an injectable time source.
func NewClockWithSource(maxDelta float64, now func() time.Time) *Clock {
	return &Clock{now: now, maxDelta: maxDelta}
}

// Tick returns the elapsed seconds since the previous tick, capped at maxDelta.
// The first tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	raw := t.Sub(c.last).Seconds()
	c.last = t
	if raw < 0 {
		raw = 0
	}
	if raw > 0 {
		// exponential moving average of the uncapped rate
		c.fps = c.fps*0.9 + (1/raw)*0.1
	}
	if raw > c.maxDelta {
		return c.maxDelta
	}
	return raw
}

// Reset forgets the previous tick so the next Tick returns 0.
func (c *Clock) Reset() {
	c.started = false
}

// FPS returns a smoothed estimate of the host frame rate.
func (c *Clock) FPS() float64 {
	return c.fps
}
