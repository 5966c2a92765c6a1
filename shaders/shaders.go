// Package shaders holds the default GLSL programs of the scene.
package shaders

import _ "embed"

// Vertex transforms positions by model/view/projection and forwards normals and texture coordinates.
//
//go:embed model.vert
var Vertex string

// Fragment shades with a texture, a base tint and a fixed array of point lights.
//
//go:embed model.frag
var Fragment string
