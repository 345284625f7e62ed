package wordsnow

import "time"

// MaxFrameDelta caps the time advanced by one frame.
const MaxFrameDelta = 33 * time.Millisecond

// SimulationClock accumulates simulation time from per-frame deltas.
// Simulation time only advances while frames are stepped, so a stalled
// or paused session resumes where it left off.
type SimulationClock struct {
	maxDelta time.Duration
	now      time.Duration
	frames   uint64
}

// NewSimulationClock creates a clock capping each frame at maxDelta.
// A non-positive maxDelta selects MaxFrameDelta.
func NewSimulationClock(maxDelta time.Duration) *SimulationClock {
	if maxDelta <= 0 {
		maxDelta = MaxFrameDelta
	}
	return &SimulationClock{maxDelta: maxDelta}
}

// Advance consumes one frame of real elapsed time and returns the capped
// delta the simulation should integrate.
func (c *SimulationClock) Advance(elapsed time.Duration) time.Duration {
	dt := min(max(elapsed, 0), c.maxDelta)
	c.now += dt
	c.frames++
	return dt
}

// Now returns the accumulated simulation time.
func (c *SimulationClock) Now() time.Duration {
	return c.now
}

// Frames returns the number of frames advanced.
func (c *SimulationClock) Frames() uint64 {
	return c.frames
}
