package render

import (
	orrery "github.com/Mai2117/Sun-Earth-Moon"
	"github.com/Mai2117/Sun-Earth-Moon/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	kitlog "github.com/go-kit/kit/log"
)

// Renderer owns the GPU resources of the scene and implements orrery.Drawer.
type Renderer struct {
	meshes    map[orrery.MeshKind]*Buffer
	orbits    map[string]*Buffer
	textures  map[orrery.TextureSlot]uint32
	white     uint32
	lineWidth float32
	logger    kitlog.Logger
}

// NewRenderer uploads the sphere, the star cube and the orbit paths and loads the body
// textures. A texture that fails to load is logged and replaced by plain white.
func NewRenderer(textures map[orrery.TextureSlot]string, orbits []*orrery.OrbitPath, lineWidth float32, logger kitlog.Logger) *Renderer {
	r := &Renderer{
		meshes: map[orrery.MeshKind]*Buffer{
			orrery.MeshSphere: NewMeshBuffer(mesh.Sphere(36, 72)),
			orrery.MeshCube:   NewMeshBuffer(mesh.Cube()),
		},
		orbits:    make(map[string]*Buffer, len(orbits)),
		textures:  make(map[orrery.TextureSlot]uint32, len(textures)),
		white:     WhiteTexture(),
		lineWidth: lineWidth,
		logger:    logger,
	}
	for _, o := range orbits {
		r.orbits[o.Name] = NewLineLoopBuffer(o.Vertices())
	}
	for slot, path := range textures {
		tex, err := LoadTexture(path)
		if err != nil {
			r.logger.Log("level", "warning", "subsys", "assets", "texture", path, "err", err)
			continue
		}
		r.textures[slot] = tex
	}
	return r
}

// Clear clears the color and depth buffers.
func (r *Renderer) Clear(color mgl32.Vec3) {
	gl.ClearColor(color[0], color[1], color[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// BindTexture binds the texture of a slot to unit 0.
func (r *Renderer) BindTexture(slot orrery.TextureSlot) {
	tex, ok := r.textures[slot]
	if !ok {
		tex = r.white
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// DrawMesh draws one of the shared meshes.
func (r *Renderer) DrawMesh(kind orrery.MeshKind) {
	if b, ok := r.meshes[kind]; ok {
		b.Draw()
	}
}

// DrawOrbit draws an orbit line loop by name.
func (r *Renderer) DrawOrbit(name string) {
	if b, ok := r.orbits[name]; ok {
		gl.LineWidth(r.lineWidth)
		b.Draw()
	}
}

// Release frees every GPU resource.
func (r *Renderer) Release() {
	for _, b := range r.meshes {
		b.Delete()
	}
	for _, b := range r.orbits {
		b.Delete()
	}
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	gl.DeleteTextures(1, &r.white)
}
