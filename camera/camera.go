// Package camera is a free-flying first person camera driven by keys and mouse motion.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a direction of travel relative to where the camera looks.
type Movement uint8

// Movements.
const (
	Forward Movement = iota
	Backward
	Left
	Right
)

const (
	defaultYaw   = -90.0
	defaultPitch = 0.0
	maxPitch     = 89.0
)

// Camera is an Euler-angle camera. Angles are in degrees.
type Camera struct {
	Position    mgl32.Vec3
	Front       mgl32.Vec3
	Up          mgl32.Vec3
	Right       mgl32.Vec3
	WorldUp     mgl32.Vec3
	Yaw, Pitch  float32
	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel

	lastX, lastY float64
	tracking     bool
	target       mgl32.Vec3
	following    bool
}

// New returns a camera at the provided position looking down -Z.
func New(position mgl32.Vec3, speed, sensitivity float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         defaultYaw,
		Pitch:       defaultPitch,
		Speed:       speed,
		Sensitivity: sensitivity,
	}
	c.update()
	return c
}

// ViewMatrix returns the look-at matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Follow carries the camera along with a moving target so that the offset to it is kept.
// The first call only records the target.
func (c *Camera) Follow(target mgl32.Vec3) {
	if c.following {
		c.Position = c.Position.Add(target.Sub(c.target))
	}
	c.target, c.following = target, true
}

// ProcessKeyboard moves the camera for dt seconds in the given direction.
func (c *Camera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse offset in pixels. Positive y looks up.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.update()
}

// CursorMoved takes absolute cursor coordinates, as reported by the window, and turns the
// camera by the offset from the previous report. The first report only records the position.
func (c *Camera) CursorMoved(x, y float64) {
	if !c.tracking {
		c.lastX, c.lastY = x, y
		c.tracking = true
	}
	dx := float32(x - c.lastX)
	dy := float32(c.lastY - y) // Window y grows downwards.
	c.lastX, c.lastY = x, y
	c.ProcessMouseMovement(dx, dy)
}

func (c *Camera) update() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
