package orrery

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func testSimulation(t *testing.T) *Simulation {
	conf := DefaultConfig()
	conf.Stars.Seed = 42
	sim, err := NewSimulation(conf, nil)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestNewSimulation(t *testing.T) {
	sim := testSimulation(t)
	if sim.EarthPath.PointCount() != 256 || sim.MoonPath.PointCount() != 128 {
		t.Fatalf("orbit paths: %s %s", sim.EarthPath, sim.MoonPath)
	}
	if len(sim.Stars.Stars) != 300 {
		t.Fatalf("expected 300 stars, got %d", len(sim.Stars.Stars))
	}
	if sim.State.Clock.Elapsed != 0 || sim.Frames() != 0 {
		t.Fatal("simulation should start at t=0")
	}

	conf := DefaultConfig()
	conf.Orbits.MoonSegments = 2
	if _, err := NewSimulation(conf, nil); err == nil {
		t.Fatal("invalid configuration accepted")
	}
}

func TestStepToEarthEclipse(t *testing.T) {
	var buf bytes.Buffer
	conf := DefaultConfig()
	conf.Stars.Count = 0
	sim, err := NewSimulation(conf, NewLogger(&buf))
	if err != nil {
		t.Fatal(err)
	}

	var f Frame
	f = sim.Step(1./60, CommandAccelerateEarthEclipse)
	for i := 0; f.Eclipse == EclipseNone && i < 10000; i++ {
		f = sim.Step(1. / 60)
	}
	if f.Eclipse != EclipseEarth {
		t.Fatalf("no Earth eclipse after %d frames (t=%f)", sim.Frames(), f.Time)
	}
	if math.Abs(f.Time-math.Pi) > 0.1 {
		t.Fatalf("Earth eclipse should happen close to t=pi, got %f", f.Time)
	}
	if f.Alignment > -1+DefaultEclipseTolerance {
		t.Fatalf("alignment %f outside of the tolerance", f.Alignment)
	}
	if !f.Shadow.EarthInShadow || !f.Flags.MotionStopped || !f.Flags.RotationStopped {
		t.Fatalf("frame state after eclipse: %+v %+v", f.Flags, f.Shadow)
	}
	if f.EarthSpin != 0 || f.MoonSpin != 0 {
		t.Fatal("spins should be zero once rotation stopped")
	}

	// Frozen: nothing moves and nothing fires again.
	frozen := f
	for i := 0; i < 100; i++ {
		f = sim.Step(1. / 60)
		if f.Time != frozen.Time || f.Positions != frozen.Positions || f.Eclipse != EclipseNone {
			t.Fatalf("system moved after the eclipse: %s", f)
		}
	}

	// Reset releases everything but keeps the time.
	f = sim.Step(1./60, CommandReset)
	if f.Shadow.EarthInShadow || f.Flags.MotionStopped {
		t.Fatalf("reset did not release: %+v %+v", f.Flags, f.Shadow)
	}
	if f.Time <= frozen.Time {
		t.Fatal("time should resume after reset")
	}
	if !strings.Contains(buf.String(), "body=earth") {
		t.Fatalf("eclipse was not logged:\n%s", buf.String())
	}
}

func TestStepToMoonEclipse(t *testing.T) {
	sim := testSimulation(t)
	// Move away from the t=0 parallel alignment first.
	sim.Step(10)
	if math.Abs(sim.State.Clock.Elapsed-1) > 1e-9 {
		t.Fatalf("10s at base rate should give t=1, got %f", sim.State.Clock.Elapsed)
	}
	f := sim.Step(1./60, CommandAccelerateMoonEclipse)
	for i := 0; f.Eclipse == EclipseNone && i < 10000; i++ {
		f = sim.Step(1. / 60)
	}
	if f.Eclipse != EclipseMoon {
		t.Fatalf("no Moon eclipse (t=%f)", f.Time)
	}
	if math.Abs(f.Time-2*math.Pi) > 0.1 {
		t.Fatalf("Moon eclipse should happen close to t=2pi, got %f", f.Time)
	}
	if !f.Shadow.MoonInShadow || f.Shadow.EarthInShadow {
		t.Fatalf("shadow incorrect: %+v", f.Shadow)
	}
}

func TestStepSpinUsesWallClock(t *testing.T) {
	sim := testSimulation(t)
	f := sim.Step(2, CommandSpeedUp)
	if f.EarthSpin != 1 {
		t.Fatalf("Earth spin after 2s should be 1 rad, got %f", f.EarthSpin)
	}
	// Accelerated: t advances at 2 rad/s while the spin stays on wall clock time.
	if math.Abs(f.Time-4) > 1e-9 {
		t.Fatalf("accelerated time incorrect: %f", f.Time)
	}
}

func TestStepPauseAndQuit(t *testing.T) {
	sim := testSimulation(t)
	sim.Step(1)
	f := sim.Step(5, CommandPause)
	if math.Abs(f.Time-0.1) > 1e-9 {
		t.Fatalf("paused clock moved: %f", f.Time)
	}
	if f.EarthSpin == 0 {
		t.Fatal("pause should not stop the spins")
	}
	f = sim.Step(1, CommandPause)
	if math.Abs(f.Time-0.2) > 1e-9 {
		t.Fatalf("unpaused clock incorrect: %f", f.Time)
	}
	if sim.Quit() {
		t.Fatal("quit before any quit command")
	}
	sim.Step(0, CommandQuit)
	if !sim.Quit() {
		t.Fatal("quit command ignored")
	}
	if sim.Frames() != 4 {
		t.Fatalf("expected 4 frames, got %d", sim.Frames())
	}
}

func TestStepNegativeDt(t *testing.T) {
	sim := testSimulation(t)
	sim.Step(1)
	f := sim.Step(-5)
	if math.Abs(f.Time-0.1) > 1e-9 || sim.State.WallClock != 1 {
		t.Fatalf("negative dt moved the simulation: t=%f wall=%f", f.Time, sim.State.WallClock)
	}
}
