package editor

import "fmt"

// Command is one entry of the editor's command surface.
type Command int

const (
	GenerateTrack Command = iota
	ClearPoints
	SavePoints
	ToggleGrass
	ToggleTrackLines
	ToggleControlPoints
)

func (c Command) String() string {
	switch c {
	case GenerateTrack:
		return "generate track"
	case ClearPoints:
		return "clear points"
	case SavePoints:
		return "save points"
	case ToggleGrass:
		return "toggle grass"
	case ToggleTrackLines:
		return "toggle track lines"
	case ToggleControlPoints:
		return "toggle control points"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// State holds the display flags. Each flag is independent.
type State struct {
	GrassBackground   bool
	ShowControlPoints bool
	ShowTrackLines    bool
}

func DefaultState() State {
	return State{ShowTrackLines: true}
}

// Apply returns s with the flag for cmd flipped. Commands that are not
// toggles leave the state unchanged.
func Apply(s State, cmd Command) State {
	switch cmd {
	case ToggleGrass:
		s.GrassBackground = !s.GrassBackground
	case ToggleTrackLines:
		s.ShowTrackLines = !s.ShowTrackLines
	case ToggleControlPoints:
		s.ShowControlPoints = !s.ShowControlPoints
	}
	return s
}

// Label is the button caption for cmd in state s.
func Label(s State, cmd Command) string {
	switch cmd {
	case ToggleGrass:
		if s.GrassBackground {
			return "hide grass image"
		}
		return "show grass image"
	case ToggleTrackLines:
		if s.ShowTrackLines {
			return "hide track lines"
		}
		return "show track lines"
	case ToggleControlPoints:
		if s.ShowControlPoints {
			return "hide control points"
		}
		return "show control points"
	}
	return cmd.String()
}
