package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near compares component by component with an absolute tolerance.
func near(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestCameraDefaults(t *testing.T) {
	c := New(mgl32.Vec3{9, 2, 20}, 2.5, 0.1)
	if !near(c.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("front should be -Z, got %v", c.Front)
	}
	if !near(c.Right, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("right should be +X, got %v", c.Right)
	}
	if !near(c.Up, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("up should be +Y, got %v", c.Up)
	}
}

func TestCameraKeyboard(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, 2, 0.1)
	c.ProcessKeyboard(Forward, 1)
	if !near(c.Position, mgl32.Vec3{0, 0, -2}, 1e-5) {
		t.Fatalf("forward: %v", c.Position)
	}
	c.ProcessKeyboard(Backward, 0.5)
	if !near(c.Position, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("backward: %v", c.Position)
	}
	c.ProcessKeyboard(Right, 1)
	c.ProcessKeyboard(Left, 0.5)
	if !near(c.Position, mgl32.Vec3{1, 0, -1}, 1e-5) {
		t.Fatalf("strafe: %v", c.Position)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := New(mgl32.Vec3{}, 1, 1)
	c.ProcessMouseMovement(0, 500)
	if c.Pitch != maxPitch {
		t.Fatalf("pitch not clamped: %f", c.Pitch)
	}
	c.ProcessMouseMovement(0, -1000)
	if c.Pitch != -maxPitch {
		t.Fatalf("pitch not clamped: %f", c.Pitch)
	}
}

func TestCameraCursor(t *testing.T) {
	c := New(mgl32.Vec3{}, 1, 0.1)
	c.CursorMoved(640, 360)
	if c.Yaw != defaultYaw || c.Pitch != defaultPitch {
		t.Fatal("first cursor report must not turn the camera")
	}
	c.CursorMoved(650, 350)
	if !mgl32.FloatEqualThreshold(c.Yaw, defaultYaw+1, 1e-5) {
		t.Fatalf("yaw = %f", c.Yaw)
	}
	if !mgl32.FloatEqualThreshold(c.Pitch, 1, 1e-5) {
		t.Fatalf("pitch = %f", c.Pitch)
	}
}

func TestViewMatrix(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, 1, 0.1)
	// The origin is straight ahead, five units away.
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !near(p.Vec3(), mgl32.Vec3{0, 0, -5}, 1e-5) {
		t.Fatalf("origin in view space: %v", p)
	}
}

func TestCameraFollow(t *testing.T) {
	c := New(mgl32.Vec3{9, 2, 20}, 1, 0.1)
	c.Follow(mgl32.Vec3{20, 0, 0})
	if c.Position != (mgl32.Vec3{9, 2, 20}) {
		t.Fatalf("first target must not move the camera: %v", c.Position)
	}
	c.Follow(mgl32.Vec3{18, 0, 5})
	if !near(c.Position, mgl32.Vec3{7, 2, 25}, 1e-5) {
		t.Fatalf("camera did not keep its offset: %v", c.Position)
	}
	c.ProcessKeyboard(Forward, 1)
	c.Follow(mgl32.Vec3{18, 0, 5})
	if !near(c.Position, mgl32.Vec3{7, 2, 24}, 1e-5) {
		t.Fatalf("a still target must leave free flight alone: %v", c.Position)
	}
}
