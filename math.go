package orrery

import (
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// unit returns the unit vector of a given vector, or the zero vector if its norm is nil.
func unit(a r3.Vec) r3.Vec {
	if scalar.EqualWithinAbs(r3.Norm(a), 0, 1e-12) {
		return r3.Vec{}
	}
	return r3.Unit(a)
}

// vec3 converts a world-space vector to the float32 type the shading layer expects.
func vec3(a r3.Vec) mgl32.Vec3 {
	return mgl32.Vec3{float32(a.X), float32(a.Y), float32(a.Z)}
}

// uniform returns a vector with all three components set to v.
func uniform(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}
