package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program. It implements orrery.UniformSink; uniform
// locations are looked up once and cached.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewProgram compiles and links the provided sources.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %v", log)
	}
	return &Program{id: id, locations: make(map[string]int32)}, nil
}

// NewProgramFromFiles reads the shader sources from disk; an empty path keeps the given fallback source.
func NewProgramFromFiles(vertexPath, fragmentPath, vertexFallback, fragmentFallback string) (*Program, error) {
	read := func(path, fallback string) (string, error) {
		if path == "" {
			return fallback, nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read shader: %w", err)
		}
		return string(src), nil
	}
	vs, err := read(vertexPath, vertexFallback)
	if err != nil {
		return nil, err
	}
	fs, err := read(fragmentPath, fragmentFallback)
	if err != nil {
		return nil, err
	}
	return NewProgram(vs, fs)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		kind := "vertex"
		if shaderType == gl.FRAGMENT_SHADER {
			kind = "fragment"
		}
		return 0, fmt.Errorf("failed to compile %s shader: %v", kind, log)
	}
	return shader, nil
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// Use makes this the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.location(name), f)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.location(name), i)
}

// Delete frees the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}
