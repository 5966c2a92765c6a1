package orrery

// Command is a simulation control derived from one key press.
type Command uint8

const (
	// CommandNone does nothing.
	CommandNone Command = iota
	// CommandAccelerateEarthEclipse fast-forwards until Earth falls into shadow.
	CommandAccelerateEarthEclipse
	// CommandAccelerateMoonEclipse fast-forwards until the Moon falls into shadow.
	CommandAccelerateMoonEclipse
	// CommandReset clears every control and shadow flag.
	CommandReset
	// CommandQuit ends the frame loop.
	CommandQuit
	// CommandSpeedUp toggles the generic fast-forward.
	CommandSpeedUp
	// CommandPause toggles the clock pause.
	CommandPause
)

func (c Command) String() string {
	switch c {
	case CommandAccelerateEarthEclipse:
		return "accelerate-earth-eclipse"
	case CommandAccelerateMoonEclipse:
		return "accelerate-moon-eclipse"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	case CommandSpeedUp:
		return "speed-up"
	case CommandPause:
		return "pause"
	default:
		return "none"
	}
}

// CommandFromString parses the names returned by Command.String.
func CommandFromString(name string) Command {
	for c := CommandNone; c <= CommandPause; c++ {
		if c.String() == name {
			return c
		}
	}
	return CommandNone
}

// Key is a keyboard key the core reacts to. Camera keys are handled by the camera itself.
type Key uint8

// Keys recognized by the mapper.
const (
	KeyEscape Key = iota
	KeyG
	KeyH
	KeyJ
	KeyF
	KeyP
)

// Bindings maps keys to the command they emit.
type Bindings map[Key]Command

// DefaultBindings are G/H/J for the eclipse scripts, F speed-up, P pause and Escape quit.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape: CommandQuit,
		KeyG:      CommandAccelerateEarthEclipse,
		KeyH:      CommandAccelerateMoonEclipse,
		KeyJ:      CommandReset,
		KeyF:      CommandSpeedUp,
		KeyP:      CommandPause,
	}
}

// Mapper turns level-triggered key polling into edge-triggered commands: a command is
// emitted once when its key goes down and not again until it has been released.
type Mapper struct {
	bindings Bindings
	down     map[Key]bool
}

// NewMapper returns a mapper for the provided bindings.
func NewMapper(b Bindings) *Mapper {
	return &Mapper{bindings: b, down: make(map[Key]bool, len(b))}
}

// Poll samples every bound key once and returns the commands of the keys that were just pressed.
func (m *Mapper) Poll(pressed func(Key) bool) []Command {
	var cmds []Command
	// Keys are walked in order so that simultaneous presses yield a stable sequence.
	for k := KeyEscape; k <= KeyP; k++ {
		cmd, ok := m.bindings[k]
		if !ok {
			continue
		}
		isDown := pressed(k)
		if isDown && !m.down[k] {
			cmds = append(cmds, cmd)
		}
		m.down[k] = isDown
	}
	return cmds
}

// Apply updates the control and shadow flags for a command. Arming one eclipse disarms
// the other and releases any freeze.
func (s *SimulationState) Apply(c Command) {
	switch c {
	case CommandAccelerateEarthEclipse:
		s.Flags.EarthEclipse = true
		s.Flags.MoonEclipse = false
		s.Flags.MotionStopped = false
		s.Flags.RotationStopped = false
		s.Shadow.MoonInShadow = false
	case CommandAccelerateMoonEclipse:
		s.Flags.MoonEclipse = true
		s.Flags.EarthEclipse = false
		s.Flags.MotionStopped = false
		s.Flags.RotationStopped = false
		s.Shadow.EarthInShadow = false
	case CommandReset:
		s.Flags = ControlFlags{}
		s.Shadow = ShadowState{}
	case CommandSpeedUp:
		s.Flags.SpeedUp = !s.Flags.SpeedUp
	case CommandPause:
		s.Clock.Paused = !s.Clock.Paused
	}
}
