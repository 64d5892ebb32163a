package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a decoded input key
type Key uint8

const (
	KeyNone Key = iota // Any key tinydaw does not bind
	KeyRune            // Printable character (check Event.Rune)
	KeyF1
	KeyF2
)

// Event represents one decoded key press
type Event struct {
	Key  Key
	Rune rune
}

// decodeKey reduces a tcell key event to the keys tinydaw binds
func decodeKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyF1:
		return Event{Key: KeyF1}
	case tcell.KeyF2:
		return Event{Key: KeyF2}
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune()}
	default:
		return Event{Key: KeyNone}
	}
}
