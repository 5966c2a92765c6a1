package orrery

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownBody is returned when a body name is not one of the Sun, Earth or Moon.
var ErrUnknownBody = errors.New("unknown celestial body")

// CelestialBody defines a body of the system and its parametric orbit around its parent.
// Note: the Sun is the degenerate case with no orbit, fixed at the origin.
type CelestialBody struct {
	Name         string
	Parent       string  // name of the body this one orbits, empty for the Sun
	OrbitRadiusX float64 // semi-axis along X
	OrbitRadiusZ float64 // semi-axis along Z
	OrbitRate    float64 // angular multiplier relative to the simulation clock
	SpinRate     float64 // self rotation in radians per wall-clock second
	Scale        float64
	Texture      TextureSlot
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// Orbiting returns whether this body moves around a parent.
func (c CelestialBody) Orbiting() bool {
	return c.Parent != "" && (c.OrbitRadiusX != 0 || c.OrbitRadiusZ != 0)
}

// LocalOffset returns the position relative to the parent at simulation time t.
func (c CelestialBody) LocalOffset(t float64) r3.Vec {
	if !c.Orbiting() {
		return r3.Vec{}
	}
	s, co := math.Sincos(c.OrbitRate * t)
	return r3.Vec{X: c.OrbitRadiusX * co, Y: 0, Z: c.OrbitRadiusZ * s}
}

// Position returns the world position at simulation time t given the parent's current
// world position. Nested orbits follow the parent rather than a fixed point.
func (c CelestialBody) Position(t float64, parent r3.Vec) r3.Vec {
	return r3.Add(parent, c.LocalOffset(t))
}

// Spin returns the self-rotation angle. It runs on wall-clock time so that it is not
// affected by fast-forwarding, and is zero once rotation is stopped.
func (c CelestialBody) Spin(wallClock float64, rotationStopped bool) float64 {
	if rotationStopped {
		return 0
	}
	return wallClock * c.SpinRate
}

// Equals returns whether the provided celestial body is the same.
func (c CelestialBody) Equals(b CelestialBody) bool {
	return c.Name == b.Name && c.Parent == b.Parent && c.OrbitRadiusX == b.OrbitRadiusX && c.OrbitRadiusZ == b.OrbitRadiusZ && c.OrbitRate == b.OrbitRate
}

// CelestialBodyFromString returns the reference body from its name.
func CelestialBodyFromString(name string) (CelestialBody, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	default:
		return CelestialBody{}, fmt.Errorf("%w: '%s'", ErrUnknownBody, name)
	}
}

/* Definitions */

// Sun sits at the origin and lights everything.
var Sun = CelestialBody{Name: "Sun", Scale: 4, Texture: TextureSun}

// Earth runs an ellipse around the Sun.
var Earth = CelestialBody{Name: "Earth", Parent: "Sun", OrbitRadiusX: 20, OrbitRadiusZ: 10, OrbitRate: 1, SpinRate: 0.5, Scale: 1, Texture: TextureEarth}

// Moon goes around twice per Earth year.
var Moon = CelestialBody{Name: "Moon", Parent: "Earth", OrbitRadiusX: 3, OrbitRadiusZ: 3, OrbitRate: 2, SpinRate: 0.5, Scale: 0.4, Texture: TextureMoon}

// Positions holds the world positions of the three bodies for one frame.
type Positions struct {
	Sun, Earth, Moon r3.Vec
}

// Of returns the position of the named body.
func (p Positions) Of(name string) (r3.Vec, error) {
	body, err := CelestialBodyFromString(name)
	if err != nil {
		return r3.Vec{}, err
	}
	switch {
	case body.Equals(Earth):
		return p.Earth, nil
	case body.Equals(Moon):
		return p.Moon, nil
	default:
		return p.Sun, nil
	}
}

// System is the Sun, Earth and Moon hierarchy.
type System struct {
	Sun, Earth, Moon CelestialBody
}

// NewSystem returns the reference system.
func NewSystem() System {
	return System{Sun: Sun, Earth: Earth, Moon: Moon}
}

// Resolve returns the world positions of all bodies at simulation time t.
func (s System) Resolve(t float64) Positions {
	sun := s.Sun.Position(t, r3.Vec{})
	earth := s.Earth.Position(t, sun)
	return Positions{Sun: sun, Earth: earth, Moon: s.Moon.Position(t, earth)}
}
