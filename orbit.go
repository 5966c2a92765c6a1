package orrery

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrOrbitSegments is returned when an orbit path would have fewer than three points.
	ErrOrbitSegments = errors.New("orbit path needs at least three segments")
	// ErrOrbitRadius is returned when either semi-axis of an orbit path is not positive.
	ErrOrbitRadius = errors.New("orbit path radii must be positive")
)

// OrbitPath is the closed polyline drawn for an orbit, in the XZ plane of its parent.
// The last point connects back to the first; there is no duplicate closing point.
type OrbitPath struct {
	Name             string
	RadiusX, RadiusZ float64
	Points           []r3.Vec
}

// NewOrbitPath returns the path of an ellipse of semi-axes (radiusX, radiusZ) sampled with
// the provided number of segments.
func NewOrbitPath(name string, segments int, radiusX, radiusZ float64) (*OrbitPath, error) {
	if segments < 3 {
		return nil, fmt.Errorf("%s: %w (got %d)", name, ErrOrbitSegments, segments)
	}
	if radiusX <= 0 || radiusZ <= 0 {
		return nil, fmt.Errorf("%s: %w (got %fx%f)", name, ErrOrbitRadius, radiusX, radiusZ)
	}
	points := make([]r3.Vec, segments)
	for i := range points {
		θ := 2 * math.Pi * float64(i) / float64(segments)
		sθ, cθ := math.Sincos(θ)
		points[i] = r3.Vec{X: radiusX * cθ, Y: 0, Z: radiusZ * sθ}
	}
	return &OrbitPath{Name: name, RadiusX: radiusX, RadiusZ: radiusZ, Points: points}, nil
}

// PointCount returns the number of points in the loop.
func (o *OrbitPath) PointCount() int {
	return len(o.Points)
}

// Vertices returns the points packed as XYZ triplets for a vertex buffer.
func (o *OrbitPath) Vertices() []float32 {
	verts := make([]float32, 0, 3*len(o.Points))
	for _, p := range o.Points {
		verts = append(verts, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return verts
}

func (o *OrbitPath) String() string {
	return fmt.Sprintf("%s orbit (%d pts, %.1fx%.1f)", o.Name, len(o.Points), o.RadiusX, o.RadiusZ)
}
