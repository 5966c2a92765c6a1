package orrery

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultEclipseTolerance is how far from perfect (anti-)alignment the detector still triggers.
const DefaultEclipseTolerance = 0.005

// Eclipse identifies which alignment event fired.
type Eclipse uint8

const (
	// EclipseNone means nothing fired this frame.
	EclipseNone Eclipse = iota
	// EclipseEarth means Earth went into shadow: Sun-Earth and Earth-Moon are anti-parallel.
	EclipseEarth
	// EclipseMoon means the Moon went into shadow: Sun-Earth and Earth-Moon are parallel.
	EclipseMoon
)

func (e Eclipse) String() string {
	switch e {
	case EclipseEarth:
		return "earth"
	case EclipseMoon:
		return "moon"
	default:
		return "none"
	}
}

// EclipseDetector freezes the system when the bodies line up during a fast-forward.
// The alignment test is a dot product heuristic, not an occlusion computation.
type EclipseDetector struct {
	Tolerance float64
}

// Alignment returns the dot product of the unit Sun→Earth and Earth→Moon vectors.
func Alignment(p Positions) float64 {
	vSE := unit(r3.Sub(p.Earth, p.Sun))
	vEM := unit(r3.Sub(p.Moon, p.Earth))
	return r3.Dot(vSE, vEM)
}

// Armed returns whether the detector evaluates anything for the provided flags.
func (d EclipseDetector) Armed(flags ControlFlags) bool {
	return (flags.EarthEclipse || flags.MoonEclipse) && !flags.RotationStopped
}

// Detect checks the alignment and, if an armed eclipse is reached, sets the shadow and
// stop flags and disarms it. Once disarmed, further calls change nothing.
func (d EclipseDetector) Detect(p Positions, s *SimulationState) Eclipse {
	if !d.Armed(s.Flags) {
		return EclipseNone
	}
	dot := Alignment(p)
	if s.Flags.EarthEclipse && dot < -1+d.Tolerance {
		s.Shadow.EarthInShadow = true
		s.Flags.RotationStopped = true
		s.Flags.MotionStopped = true
		s.Flags.EarthEclipse = false
		return EclipseEarth
	}
	if s.Flags.MoonEclipse && dot > 1-d.Tolerance {
		s.Shadow.MoonInShadow = true
		s.Flags.RotationStopped = true
		s.Flags.MotionStopped = true
		s.Flags.MoonEclipse = false
		return EclipseMoon
	}
	return EclipseNone
}
