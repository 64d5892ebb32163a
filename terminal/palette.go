package terminal

import "github.com/gdamore/tcell/v2"

// Color ids as drawn text refers to them. Id 0 is the terminal default;
// the views own ids 1 and 2.
const (
	ColorDefault = 0
	ColorGreen   = 1
	ColorCyan    = 2
)

// defaultPalette maps color ids to foreground styles over the
// terminal's own background.
func defaultPalette() map[int]tcell.Style {
	return map[int]tcell.Style{
		ColorGreen: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		ColorCyan:  tcell.StyleDefault.Foreground(tcell.ColorTeal),
	}
}

// style resolves a color id. Ids the palette does not carry fall back
// to the default style.
func (s *Session) style(id int) tcell.Style {
	if st, ok := s.palette[id]; ok {
		return st
	}
	return tcell.StyleDefault
}
