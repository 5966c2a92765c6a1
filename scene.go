package orrery

import (
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"
)

// UniformSink is a shader program addressed by uniform name.
type UniformSink interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// Drawer issues the draws for pre-loaded GPU resources. Transforms and tints must be
// set on the UniformSink beforehand.
type Drawer interface {
	BindTexture(slot TextureSlot)
	DrawMesh(mesh MeshKind)
	DrawOrbit(name string)
}

// TextureSlot identifies one of the loaded body textures.
type TextureSlot uint8

// Texture slots. TextureNone binds the plain white fallback.
const (
	TextureNone TextureSlot = iota
	TextureSun
	TextureEarth
	TextureMoon
)

// MeshKind identifies the geometry of a draw.
type MeshKind uint8

// Meshes.
const (
	MeshSphere MeshKind = iota
	MeshCube
	MeshLineLoop
)

// Tints are the base colors multiplied into each entity.
type Tints struct {
	Star, Sun, EarthOrbit, MoonOrbit, Lit, Shadow mgl32.Vec3
}

// DefaultTints returns the reference look: an overexposed Sun, grey orbits and a
// near-black substitute for eclipsed bodies.
func DefaultTints() Tints {
	return Tints{
		Star:       uniform(1),
		Sun:        mgl32.Vec3{4, 3.5, 2.5},
		EarthOrbit: uniform(0.8),
		MoonOrbit:  uniform(0.7),
		Lit:        uniform(1),
		Shadow:     uniform(0.1),
	}
}

// View is the camera state for a frame.
type View struct {
	View, Projection mgl32.Mat4
	Position         mgl32.Vec3
}

// LightUniform is a light to write into the given slot before a draw.
type LightUniform struct {
	Index int
	Light PointLight
}

// DrawCall is everything needed to draw one entity.
type DrawCall struct {
	Entity   string
	Mesh     MeshKind
	Orbit    string // orbit path name for MeshLineLoop
	Model    mgl32.Mat4
	Texture  TextureSlot
	Tint     mgl32.Vec3
	Lights   []LightUniform
	LightPos *mgl32.Vec3
}

// Scene composes the draw list of a frame.
type Scene struct {
	Tints     Tints
	Stars     Starfield
	System    System
	EarthPath string
	MoonPath  string
}

// transform is translate · rotate(Y) · scale.
func transform(pos r3.Vec, angle, scale float64) mgl32.Mat4 {
	s := float32(scale)
	return mgl32.Translate3D(float32(pos.X), float32(pos.Y), float32(pos.Z)).
		Mul4(mgl32.HomogRotate3DY(float32(angle))).
		Mul4(mgl32.Scale3D(s, s, s))
}

func (sc Scene) tint(inShadow bool) mgl32.Vec3 {
	if inShadow {
		return sc.Tints.Shadow
	}
	return sc.Tints.Lit
}

// Compose returns the draws of a frame in order: stars, Sun, Earth orbit, Earth, Moon orbit, Moon.
func (sc Scene) Compose(f Frame) []DrawCall {
	calls := make([]DrawCall, 0, len(sc.Stars.Stars)+5)
	for _, star := range sc.Stars.Stars {
		calls = append(calls, DrawCall{
			Entity:  "star",
			Mesh:    MeshCube,
			Model:   transform(star, 0, sc.Stars.Size),
			Texture: TextureNone,
			Tint:    sc.Tints.Star,
		})
	}

	sunPos := vec3(f.Positions.Sun)
	calls = append(calls, DrawCall{
		Entity:  sc.System.Sun.Name,
		Mesh:    MeshSphere,
		Model:   transform(f.Positions.Sun, f.SunSpin, sc.System.Sun.Scale),
		Texture: sc.System.Sun.Texture,
		Tint:    sc.Tints.Sun,
		Lights: []LightUniform{
			{Index: LightSun, Light: SunLight(sunPos)},
			{Index: LightInactive, Light: InactiveLight()},
		},
		LightPos: &sunPos,
	})

	calls = append(calls, DrawCall{
		Entity:  sc.EarthPath,
		Mesh:    MeshLineLoop,
		Orbit:   sc.EarthPath,
		Model:   transform(f.Positions.Sun, 0, 1),
		Texture: TextureNone,
		Tint:    sc.Tints.EarthOrbit,
	})

	calls = append(calls, DrawCall{
		Entity:  sc.System.Earth.Name,
		Mesh:    MeshSphere,
		Model:   transform(f.Positions.Earth, f.EarthSpin, sc.System.Earth.Scale),
		Texture: sc.System.Earth.Texture,
		Tint:    sc.tint(f.Shadow.EarthInShadow),
		Lights: []LightUniform{
			{Index: LightMoon, Light: MoonGlow(vec3(f.Positions.Moon), f.Shadow.MoonInShadow)},
		},
	})

	calls = append(calls, DrawCall{
		Entity:  sc.MoonPath,
		Mesh:    MeshLineLoop,
		Orbit:   sc.MoonPath,
		Model:   transform(f.Positions.Earth, 0, 1),
		Texture: TextureNone,
		Tint:    sc.Tints.MoonOrbit,
	})

	calls = append(calls, DrawCall{
		Entity:  sc.System.Moon.Name,
		Mesh:    MeshSphere,
		Model:   transform(f.Positions.Moon, f.MoonSpin, sc.System.Moon.Scale),
		Texture: sc.System.Moon.Texture,
		Tint:    sc.tint(f.Shadow.MoonInShadow),
	})
	return calls
}

// Emit pushes the frame uniforms and then every draw call to the shading layer.
func Emit(sink UniformSink, drawer Drawer, v View, calls []DrawCall) {
	sink.Use()
	sink.SetInt("textureSample", 0)
	sink.SetVec3("objectColor", uniform(1))
	sink.SetMat4("projection", v.Projection)
	sink.SetMat4("view", v.View)
	sink.SetVec3("viewPos", v.Position)

	for _, c := range calls {
		sink.SetMat4("model", c.Model)
		sink.SetVec3("objectColor", c.Tint)
		for _, l := range c.Lights {
			l.Light.Apply(sink, l.Index)
		}
		if c.LightPos != nil {
			sink.SetVec3("lightPos", *c.LightPos)
		}
		drawer.BindTexture(c.Texture)
		if c.Mesh == MeshLineLoop {
			drawer.DrawOrbit(c.Orbit)
		} else {
			drawer.DrawMesh(c.Mesh)
		}
	}
}
