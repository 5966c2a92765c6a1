// Package mesh generates the vertex data of the primitives drawn by the scene.
//
// Vertices are interleaved as position (3), normal (3), texture coordinates (2).
package mesh

import "math"

// Stride is the number of float32 values per vertex.
const Stride = 8

// Data is an indexed triangle mesh.
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (d Data) VertexCount() int {
	return len(d.Vertices) / Stride
}

// Sphere returns a unit-radius UV sphere. Texture u wraps around Y and v goes from the
// south pole (0) to the north pole (1).
func Sphere(stacks, sectors int) Data {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}
	d := Data{
		Vertices: make([]float32, 0, (stacks+1)*(sectors+1)*Stride),
		Indices:  make([]uint32, 0, stacks*sectors*6),
	}
	for i := 0; i <= stacks; i++ {
		φ := math.Pi/2 - math.Pi*float64(i)/float64(stacks) // latitude from +π/2 to -π/2
		sφ, cφ := math.Sincos(φ)
		for j := 0; j <= sectors; j++ {
			θ := 2 * math.Pi * float64(j) / float64(sectors)
			sθ, cθ := math.Sincos(θ)
			x, y, z := cφ*cθ, sφ, cφ*sθ
			u := float64(j) / float64(sectors)
			v := 1 - float64(i)/float64(stacks)
			d.Vertices = append(d.Vertices,
				float32(x), float32(y), float32(z),
				float32(x), float32(y), float32(z),
				float32(u), float32(v))
		}
	}
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors+1)
		for j := 0; j < sectors; j++ {
			if i != 0 {
				d.Indices = append(d.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				d.Indices = append(d.Indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}
	return d
}

// Cube returns a unit cube centered on the origin, with per-face normals.
func Cube() Data {
	faces := []struct {
		normal, u, v [3]float32
	}{
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	d := Data{
		Vertices: make([]float32, 0, 24*Stride),
		Indices:  make([]uint32, 0, 36),
	}
	for f, face := range faces {
		for _, c := range corners {
			var p [3]float32
			for k := 0; k < 3; k++ {
				p[k] = 0.5 * (face.normal[k] + c[0]*face.u[k] + c[1]*face.v[k])
			}
			d.Vertices = append(d.Vertices,
				p[0], p[1], p[2],
				face.normal[0], face.normal[1], face.normal[2],
				(c[0]+1)/2, (c[1]+1)/2)
		}
		base := uint32(4 * f)
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return d
}
