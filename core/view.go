// Package core holds the view state machine.
package core

import "github.com/lixenwraith/tinydaw/terminal"

// View represents which of the two screens is showing
type View uint8

const (
	ChannelView View = iota // Startup view
	ChannelAssign
)

// Label returns the text rendered in the middle of the screen.
func (v View) Label() string {
	switch v {
	case ChannelAssign:
		return "Channel Assign"
	default:
		return "Channel View"
	}
}

// ColorID returns the palette color the label is drawn with. Label and
// color always move together; both derive from the view alone.
func (v View) ColorID() int {
	switch v {
	case ChannelAssign:
		return terminal.ColorCyan
	default:
		return terminal.ColorGreen
	}
}

func (v View) String() string { return v.Label() }

// Next returns the view after one key press. Keys without a binding
// leave the view unchanged; quitting is the run loop's call, not a
// transition.
func (v View) Next(ev terminal.Event) View {
	switch ev.Key {
	case terminal.KeyF1:
		return ChannelView
	case terminal.KeyF2:
		return ChannelAssign
	default:
		return v
	}
}
