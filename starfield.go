package orrery

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Starfield is a fixed backdrop of star markers scattered in a cube around the origin.
type Starfield struct {
	Extent float64 // half side of the bounding cube
	Size   float64 // edge length of each star marker
	Stars  []r3.Vec
}

// NewStarfield scatters count stars with independent uniform coordinates in [-extent, extent].
func NewStarfield(count int, extent, size float64, rng *rand.Rand) Starfield {
	if count < 0 {
		count = 0
	}
	stars := make([]r3.Vec, count)
	for i := range stars {
		stars[i] = r3.Vec{
			X: (2*rng.Float64() - 1) * extent,
			Y: (2*rng.Float64() - 1) * extent,
			Z: (2*rng.Float64() - 1) * extent,
		}
	}
	return Starfield{Extent: extent, Size: size, Stars: stars}
}
