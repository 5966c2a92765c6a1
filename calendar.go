package orrery

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// DaysPerOrbit is the number of simulated days in one full Earth revolution.
const DaysPerOrbit = 365.25

// Calendar maps the simulation clock onto dates: one revolution of Earth is one year
// counted from Epoch. It is only used to label logs and traces.
type Calendar struct {
	Epoch time.Time
}

// Date returns the simulated date at simulation time t.
func (c Calendar) Date(t float64) time.Time {
	jd := julian.TimeToJD(c.Epoch.UTC()) + t/(2*math.Pi)*DaysPerOrbit
	return julian.JDToTime(jd)
}

// Orbits returns how many full Earth revolutions have elapsed at simulation time t.
func (c Calendar) Orbits(t float64) int {
	return int(math.Floor(t / (2 * math.Pi)))
}
