package orrery

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// recorder captures everything pushed to the shading layer.
type recorder struct {
	ops   []string
	vec3s map[string]mgl32.Vec3
	mat4s map[string]mgl32.Mat4
	draws []string
}

func newRecorder() *recorder {
	return &recorder{vec3s: map[string]mgl32.Vec3{}, mat4s: map[string]mgl32.Mat4{}}
}

func (r *recorder) Use() { r.ops = append(r.ops, "use") }
func (r *recorder) SetMat4(name string, m mgl32.Mat4) { r.ops = append(r.ops, name); r.mat4s[name] = m }
func (r *recorder) SetVec3(name string, v mgl32.Vec3) { r.ops = append(r.ops, name); r.vec3s[name] = v }
func (r *recorder) SetFloat(name string, f float32) { r.ops = append(r.ops, name) }
func (r *recorder) SetInt(name string, i int32) { r.ops = append(r.ops, name) }
func (r *recorder) BindTexture(slot TextureSlot) { r.ops = append(r.ops, fmt.Sprintf("texture:%d", slot)) }
func (r *recorder) DrawMesh(mesh MeshKind) { r.draws = append(r.draws, fmt.Sprintf("mesh:%d", mesh)) }
func (r *recorder) DrawOrbit(name string) { r.draws = append(r.draws, "orbit:"+name) }

func testScene(stars int) Scene {
	return Scene{
		Tints:     DefaultTints(),
		Stars:     NewStarfield(stars, 200, 0.4, rand.New(rand.NewSource(1))),
		System:    NewSystem(),
		EarthPath: "earth-orbit",
		MoonPath:  "moon-orbit",
	}
}

func testFrame(t float64) Frame {
	return Frame{Time: t, Positions: NewSystem().Resolve(t)}
}

func TestComposeOrder(t *testing.T) {
	calls := testScene(2).Compose(testFrame(0))
	var got []string
	for _, c := range calls {
		got = append(got, c.Entity)
	}
	exp := []string{"star", "star", "Sun", "earth-orbit", "Earth", "moon-orbit", "Moon"}
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("draw order %v != %v", got, exp)
	}
	if calls[3].Mesh != MeshLineLoop || calls[3].Orbit != "earth-orbit" {
		t.Fatalf("Earth orbit draw incorrect: %+v", calls[3])
	}
	if calls[2].Texture != TextureSun || calls[4].Texture != TextureEarth || calls[6].Texture != TextureMoon {
		t.Fatal("body textures incorrect")
	}
	if calls[0].Texture != TextureNone || calls[0].Mesh != MeshCube {
		t.Fatal("stars should be untextured cubes")
	}
}

func TestComposeTransforms(t *testing.T) {
	f := testFrame(math.Pi / 2)
	calls := testScene(0).Compose(f)
	earth, moonOrbit, moon := calls[2], calls[3], calls[4]

	origin := mgl32.Vec4{0, 0, 0, 1}
	if p := earth.Model.Mul4x1(origin); !p.Vec3().ApproxEqualThreshold(vec3(f.Positions.Earth), 1e-5) {
		t.Fatalf("Earth model does not translate to its position: %v", p)
	}
	// The Moon orbit follows Earth.
	if p := moonOrbit.Model.Mul4x1(origin); !p.Vec3().ApproxEqualThreshold(vec3(f.Positions.Earth), 1e-5) {
		t.Fatalf("Moon orbit not centered on Earth: %v", p)
	}
	// Scale is applied before the translation.
	tip := moon.Model.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3().Sub(vec3(f.Positions.Moon))
	if !mgl32.FloatEqualThreshold(tip.Len(), 0.4, 1e-5) {
		t.Fatalf("Moon scale incorrect: %f", tip.Len())
	}
}

func TestComposeShadowTints(t *testing.T) {
	sc := testScene(0)
	f := testFrame(0)
	calls := sc.Compose(f)
	if calls[2].Tint != uniform(1) || calls[4].Tint != uniform(1) {
		t.Fatal("lit bodies should be tinted 1.0")
	}
	if calls[0].Tint != (mgl32.Vec3{4, 3.5, 2.5}) {
		t.Fatalf("Sun tint incorrect: %v", calls[0].Tint)
	}

	f.Shadow.EarthInShadow = true
	calls = sc.Compose(f)
	if calls[2].Tint != uniform(0.1) || calls[4].Tint != uniform(1) {
		t.Fatalf("Earth in shadow: %v %v", calls[2].Tint, calls[4].Tint)
	}
	f.Shadow = ShadowState{MoonInShadow: true}
	calls = sc.Compose(f)
	if calls[2].Tint != uniform(1) || calls[4].Tint != uniform(0.1) {
		t.Fatalf("Moon in shadow: %v %v", calls[2].Tint, calls[4].Tint)
	}
	if calls[2].Lights[0].Light.Diffuse != uniform(0.25) {
		t.Fatalf("Moon glow should brighten in shadow: %v", calls[2].Lights[0].Light.Diffuse)
	}
}

func TestComposeLights(t *testing.T) {
	f := testFrame(1)
	calls := testScene(0).Compose(f)
	sun, earth := calls[0], calls[2]
	if len(sun.Lights) != 2 || sun.Lights[0].Index != LightSun || sun.Lights[1].Index != LightInactive {
		t.Fatalf("Sun lights incorrect: %+v", sun.Lights)
	}
	if sun.LightPos == nil || *sun.LightPos != (mgl32.Vec3{}) {
		t.Fatal("light position should be the Sun's")
	}
	if len(earth.Lights) != 1 || earth.Lights[0].Index != LightMoon {
		t.Fatalf("Earth should carry the Moon glow: %+v", earth.Lights)
	}
	if glow := earth.Lights[0].Light.Position; glow != vec3(f.Positions.Moon) {
		t.Fatalf("Moon glow at %v, Moon at %v", glow, f.Positions.Moon)
	}
	for _, l := range append(sun.Lights, earth.Lights...) {
		if l.Index < 0 || l.Index >= MaxPointLights {
			t.Fatalf("light slot %d out of range", l.Index)
		}
	}
}

func TestEmit(t *testing.T) {
	sc := testScene(1)
	calls := sc.Compose(testFrame(0))
	rec := newRecorder()
	view := View{View: mgl32.Ident4(), Projection: mgl32.Perspective(mgl32.DegToRad(45), 16./9, 0.1, 200), Position: mgl32.Vec3{9, 2, 20}}
	Emit(rec, rec, view, calls)

	head := []string{"use", "textureSample", "objectColor", "projection", "view", "viewPos"}
	if !reflect.DeepEqual(rec.ops[:len(head)], head) {
		t.Fatalf("frame uniforms %v != %v", rec.ops[:len(head)], head)
	}
	expDraws := []string{
		fmt.Sprintf("mesh:%d", MeshCube), fmt.Sprintf("mesh:%d", MeshSphere), "orbit:earth-orbit",
		fmt.Sprintf("mesh:%d", MeshSphere), "orbit:moon-orbit", fmt.Sprintf("mesh:%d", MeshSphere),
	}
	if !reflect.DeepEqual(rec.draws, expDraws) {
		t.Fatalf("draws %v != %v", rec.draws, expDraws)
	}
	for i := 0; i < MaxPointLights; i++ {
		if _, ok := rec.vec3s[fmt.Sprintf("pointLights[%d].position", i)]; !ok {
			t.Fatalf("light %d never written", i)
		}
	}
	if rec.vec3s["pointLights[2].position"] != vec3(NewSystem().Resolve(0).Moon) {
		t.Fatalf("Moon glow uniform at %v", rec.vec3s["pointLights[2].position"])
	}
	if rec.vec3s["pointLights[1].diffuse"] != (mgl32.Vec3{}) {
		t.Fatal("inactive light should not contribute")
	}
	if rec.vec3s["viewPos"] != view.Position {
		t.Fatal("view position not forwarded")
	}
	// The last tint pushed is the Moon's.
	if rec.vec3s["objectColor"] != uniform(1) {
		t.Fatalf("last tint incorrect: %v", rec.vec3s["objectColor"])
	}
}
