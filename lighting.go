package orrery

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the size of the point light array the shading layer declares.
// All entries are written every frame, unused ones with zero intensity.
const MaxPointLights = 3

// Light slots.
const (
	LightSun = iota
	LightInactive
	LightMoon
)

// PointLight is a Phong point light with distance attenuation.
type PointLight struct {
	Position                    mgl32.Vec3
	Ambient, Diffuse, Specular  mgl32.Vec3
	Constant, Linear, Quadratic float32
}

// Apply writes the light into pointLights[index].
func (l PointLight) Apply(sink UniformSink, index int) {
	prefix := fmt.Sprintf("pointLights[%d].", index)
	sink.SetVec3(prefix+"position", l.Position)
	sink.SetVec3(prefix+"ambient", l.Ambient)
	sink.SetVec3(prefix+"diffuse", l.Diffuse)
	sink.SetVec3(prefix+"specular", l.Specular)
	sink.SetFloat(prefix+"constant", l.Constant)
	sink.SetFloat(prefix+"linear", l.Linear)
	sink.SetFloat(prefix+"quadratic", l.Quadratic)
}

// SunLight is the main light, warm and with a long reach.
func SunLight(pos mgl32.Vec3) PointLight {
	return PointLight{
		Position:  pos,
		Ambient:   mgl32.Vec3{0.3, 0.25, 0.1},
		Diffuse:   mgl32.Vec3{1.3, 1.1, 0.8},
		Specular:  mgl32.Vec3{1.3, 1.1, 0.9},
		Constant:  1,
		Linear:    0.007,
		Quadratic: 0.0002,
	}
}

// InactiveLight fills a slot of the light array without contributing anything.
func InactiveLight() PointLight {
	return PointLight{
		Position:  uniform(1000),
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// MoonGlow is the faint light reflected by the Moon. It brightens while the Moon is
// eclipsed so that the dimmed Moon keeps a residual glow.
func MoonGlow(pos mgl32.Vec3, inShadow bool) PointLight {
	l := PointLight{
		Position:  pos,
		Ambient:   uniform(0.01),
		Diffuse:   uniform(0.06),
		Specular:  uniform(0.08),
		Constant:  1,
		Linear:    0.03,
		Quadratic: 0.001,
	}
	if inShadow {
		l.Ambient = uniform(0.03)
		l.Diffuse = uniform(0.25)
		l.Specular = uniform(0.30)
	}
	return l
}
