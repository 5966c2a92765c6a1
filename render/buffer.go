package render

import (
	"github.com/Mai2117/Sun-Earth-Moon/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer is geometry uploaded to the GPU.
type Buffer struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	indexed       bool
}

// NewMeshBuffer uploads an indexed triangle mesh with position, normal and uv attributes.
func NewMeshBuffer(d mesh.Data) *Buffer {
	b := &Buffer{count: int32(len(d.Indices)), mode: gl.TRIANGLES, indexed: true}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*4, gl.Ptr(d.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return b
}

// NewLineLoopBuffer uploads XYZ points drawn as a closed line loop. Only the position
// attribute is enabled, so the shader sees a zero normal.
func NewLineLoopBuffer(points []float32) *Buffer {
	b := &Buffer{count: int32(len(points) / 3), mode: gl.LINE_LOOP}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*4, gl.Ptr(points), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// Draw draws the whole buffer.
func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete frees the GPU objects.
func (b *Buffer) Delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	if b.indexed {
		gl.DeleteBuffers(1, &b.ebo)
	}
}
