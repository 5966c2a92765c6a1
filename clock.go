package orrery

const (
	// DefaultBaseRate is the orbital phase advance in radians per real second.
	DefaultBaseRate = 0.1
	// DefaultAcceleratedRate is the phase advance while any fast-forward flag is armed.
	DefaultAcceleratedRate = 2.0
)

// Clock accumulates simulation time, which doubles as the orbital phase angle.
type Clock struct {
	Elapsed         float64 // accumulated simulation time
	BaseRate        float64
	AcceleratedRate float64
	Paused          bool
}

// NewClock returns a clock at t=0 with the provided rates.
func NewClock(baseRate, acceleratedRate float64) Clock {
	return Clock{BaseRate: baseRate, AcceleratedRate: acceleratedRate}
}

// Rate returns the effective rate for the provided flags.
func (c Clock) Rate(flags ControlFlags) float64 {
	multiplier := 1.0
	if flags.Accelerated() && c.BaseRate != 0 {
		multiplier = c.AcceleratedRate / c.BaseRate
	}
	return c.BaseRate * multiplier
}

// Advance moves the clock forward by dt real seconds and returns the new simulation time.
// Nothing moves while motion is stopped or the clock is paused.
func (c *Clock) Advance(dt float64, flags ControlFlags) float64 {
	if dt < 0 {
		dt = 0
	}
	if flags.MotionStopped || c.Paused {
		return c.Elapsed
	}
	c.Elapsed += dt * c.Rate(flags)
	return c.Elapsed
}

// Reset rewinds the clock to t=0.
func (c *Clock) Reset() {
	c.Elapsed = 0
}
