package orrery

import (
	"reflect"
	"testing"
)

func TestMapperEdges(t *testing.T) {
	m := NewMapper(DefaultBindings())
	down := map[Key]bool{}
	pressed := func(k Key) bool { return down[k] }

	if cmds := m.Poll(pressed); len(cmds) != 0 {
		t.Fatalf("no key down but got %v", cmds)
	}
	down[KeyG] = true
	if cmds := m.Poll(pressed); !reflect.DeepEqual(cmds, []Command{CommandAccelerateEarthEclipse}) {
		t.Fatalf("press G: got %v", cmds)
	}
	for i := 0; i < 5; i++ {
		if cmds := m.Poll(pressed); len(cmds) != 0 {
			t.Fatalf("held key emitted again: %v", cmds)
		}
	}
	down[KeyG] = false
	if cmds := m.Poll(pressed); len(cmds) != 0 {
		t.Fatalf("release emitted %v", cmds)
	}
	down[KeyG] = true
	if cmds := m.Poll(pressed); !reflect.DeepEqual(cmds, []Command{CommandAccelerateEarthEclipse}) {
		t.Fatalf("second press of G: got %v", cmds)
	}
}

func TestMapperSimultaneous(t *testing.T) {
	m := NewMapper(DefaultBindings())
	down := map[Key]bool{KeyJ: true, KeyEscape: true, KeyH: true}
	cmds := m.Poll(func(k Key) bool { return down[k] })
	exp := []Command{CommandQuit, CommandAccelerateMoonEclipse, CommandReset}
	if !reflect.DeepEqual(cmds, exp) {
		t.Fatalf("got %v, expected %v", cmds, exp)
	}
}

func TestMapperCustomBindings(t *testing.T) {
	m := NewMapper(Bindings{KeyP: CommandQuit})
	cmds := m.Poll(func(k Key) bool { return true })
	if !reflect.DeepEqual(cmds, []Command{CommandQuit}) {
		t.Fatalf("unbound keys emitted commands: %v", cmds)
	}
}

func TestApply(t *testing.T) {
	var s SimulationState
	s.Flags.MotionStopped = true
	s.Flags.RotationStopped = true
	s.Shadow = ShadowState{EarthInShadow: true, MoonInShadow: true}

	s.Apply(CommandAccelerateEarthEclipse)
	if !s.Flags.EarthEclipse || s.Flags.MoonEclipse || s.Flags.MotionStopped || s.Flags.RotationStopped {
		t.Fatalf("flags after G: %+v", s.Flags)
	}
	if !s.Shadow.EarthInShadow || s.Shadow.MoonInShadow {
		t.Fatalf("G should only clear the Moon shadow: %+v", s.Shadow)
	}

	s.Shadow.MoonInShadow = true
	s.Apply(CommandAccelerateMoonEclipse)
	if s.Flags.EarthEclipse || !s.Flags.MoonEclipse {
		t.Fatalf("arming the Moon eclipse should disarm the Earth one: %+v", s.Flags)
	}
	if s.Shadow.EarthInShadow || !s.Shadow.MoonInShadow {
		t.Fatalf("H should only clear the Earth shadow: %+v", s.Shadow)
	}

	s.Apply(CommandSpeedUp)
	s.Apply(CommandPause)
	if !s.Flags.SpeedUp || !s.Clock.Paused {
		t.Fatal("speed-up and pause should toggle on")
	}
	s.Apply(CommandSpeedUp)
	s.Apply(CommandPause)
	if s.Flags.SpeedUp || s.Clock.Paused {
		t.Fatal("speed-up and pause should toggle off")
	}

	s.Clock.Elapsed = 4
	s.Flags.SpeedUp = true
	s.Apply(CommandReset)
	if s.Flags != (ControlFlags{}) || s.Shadow != (ShadowState{}) {
		t.Fatalf("reset left %+v %+v", s.Flags, s.Shadow)
	}
	if s.Clock.Elapsed != 4 {
		t.Fatal("reset should not rewind the clock")
	}
}

func TestCommandFromString(t *testing.T) {
	for c := CommandNone; c <= CommandPause; c++ {
		if got := CommandFromString(c.String()); got != c {
			t.Fatalf("%s parsed as %s", c, got)
		}
	}
	if CommandFromString("warp") != CommandNone {
		t.Fatal("unknown names should parse as none")
	}
}
