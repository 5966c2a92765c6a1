package orrery

import (
	"fmt"
	"math/rand"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// ControlFlags are the fast-forward and freeze switches. Commands set them and the
// eclipse detector clears the armed eclipse when it fires.
type ControlFlags struct {
	EarthEclipse    bool // fast-forwarding toward an Earth eclipse
	MoonEclipse     bool // fast-forwarding toward a Moon eclipse
	SpeedUp         bool // generic fast-forward
	MotionStopped   bool // orbits frozen
	RotationStopped bool // spins frozen, detector disarmed
}

// Accelerated returns whether the clock should run at the accelerated rate.
func (f ControlFlags) Accelerated() bool {
	return f.EarthEclipse || f.MoonEclipse || f.SpeedUp
}

// ShadowState selects the dimmed material of eclipsed bodies.
type ShadowState struct {
	EarthInShadow, MoonInShadow bool
}

// SimulationState is all the mutable state of the simulation. It is owned by the frame
// loop and only ever touched from it.
type SimulationState struct {
	Clock     Clock
	Flags     ControlFlags
	Shadow    ShadowState
	WallClock float64 // real seconds since start, drives the spins
}

// Frame is the outcome of one update, which is all the scene composer reads.
type Frame struct {
	Number                       uint64
	Time                         float64 // simulation time
	Date                         time.Time
	Positions                    Positions
	SunSpin, EarthSpin, MoonSpin float64
	Alignment                    float64
	Flags                        ControlFlags
	Shadow                       ShadowState
	Eclipse                      Eclipse
}

func (f Frame) String() string {
	return fmt.Sprintf("frame %d t=%.4f %s eclipse=%s", f.Number, f.Time, f.Date.Format("2006-01-02"), f.Eclipse)
}

// Simulation drives the Sun, Earth and Moon through time.
type Simulation struct {
	State     SimulationState
	System    System
	Detector  EclipseDetector
	Calendar  Calendar
	EarthPath *OrbitPath
	MoonPath  *OrbitPath
	Stars     Starfield
	frames    uint64
	quit      bool
	logger    kitlog.Logger
}

// NewSimulation builds the simulation from the configuration.
func NewSimulation(conf Config, logger kitlog.Logger) (*Simulation, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	sys := conf.System()
	earthPath, err := NewOrbitPath("earth-orbit", conf.Orbits.EarthSegments, sys.Earth.OrbitRadiusX, sys.Earth.OrbitRadiusZ)
	if err != nil {
		return nil, err
	}
	moonPath, err := NewOrbitPath("moon-orbit", conf.Orbits.MoonSegments, sys.Moon.OrbitRadiusX, sys.Moon.OrbitRadiusZ)
	if err != nil {
		return nil, err
	}
	seed := conf.Stars.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	epoch, _ := conf.Epoch() // Checked by Validate.

	s := &Simulation{
		State:     SimulationState{Clock: NewClock(conf.Clock.BaseRate, conf.Clock.AcceleratedRate)},
		System:    sys,
		Detector:  EclipseDetector{Tolerance: conf.Eclipse.Tolerance},
		Calendar:  Calendar{Epoch: epoch},
		EarthPath: earthPath,
		MoonPath:  moonPath,
		Stars:     NewStarfield(conf.Stars.Count, conf.Stars.Extent, conf.Stars.Size, rand.New(rand.NewSource(seed))),
		logger:    logger,
	}
	s.logger.Log("level", "info", "subsys", "sim", "earth", earthPath, "moon", moonPath, "stars", len(s.Stars.Stars), "seed", seed)
	return s, nil
}

// Scene returns the composer for this simulation.
func (s *Simulation) Scene(t Tints) Scene {
	return Scene{Tints: t, Stars: s.Stars, System: s.System, EarthPath: s.EarthPath.Name, MoonPath: s.MoonPath.Name}
}

// Quit returns whether a quit command was received.
func (s *Simulation) Quit() bool {
	return s.quit
}

// Frames returns the number of frames stepped so far.
func (s *Simulation) Frames() uint64 {
	return s.frames
}

// Step applies the commands, advances the clock by dt real seconds, resolves the bodies
// and runs the eclipse detector. It never touches the graphics layer.
func (s *Simulation) Step(dt float64, cmds ...Command) Frame {
	for _, cmd := range cmds {
		if cmd == CommandNone {
			continue
		}
		if cmd == CommandQuit {
			s.quit = true
		}
		s.State.Apply(cmd)
		s.logger.Log("level", "info", "subsys", "input", "command", cmd, "flags", fmt.Sprintf("%+v", s.State.Flags))
	}
	if dt < 0 {
		dt = 0
	}
	s.State.WallClock += dt
	t := s.State.Clock.Advance(dt, s.State.Flags)
	pos := s.System.Resolve(t)
	eclipse := s.Detector.Detect(pos, &s.State)
	s.frames++

	f := Frame{
		Number:    s.frames,
		Time:      t,
		Date:      s.Calendar.Date(t),
		Positions: pos,
		SunSpin:   s.System.Sun.Spin(s.State.WallClock, s.State.Flags.RotationStopped),
		EarthSpin: s.System.Earth.Spin(s.State.WallClock, s.State.Flags.RotationStopped),
		MoonSpin:  s.System.Moon.Spin(s.State.WallClock, s.State.Flags.RotationStopped),
		Alignment: Alignment(pos),
		Flags:     s.State.Flags,
		Shadow:    s.State.Shadow,
		Eclipse:   eclipse,
	}
	if eclipse != EclipseNone {
		s.logger.Log("level", "notice", "subsys", "eclipse", "body", eclipse, "frame", f.Number, "t", t, "date", f.Date.Format("2006-01-02"), "alignment", f.Alignment)
	}
	return f
}
