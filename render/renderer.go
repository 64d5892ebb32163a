// Package render draws the fixed three-zone tinydaw frame: title bar,
// centered view label, key hint footer.
package render

import (
	"github.com/lixenwraith/tinydaw/core"
	"github.com/lixenwraith/tinydaw/terminal"
)

const (
	titleText  = "tinydaw alpha"
	footerText = "F1: Channel View | F2: Channel Assign | q: quit"
)

// Renderer redraws whole frames on a session. It keeps no image of the
// previous frame; every frame starts from a cleared screen.
type Renderer struct {
	sess *terminal.Session
}

// NewRenderer creates a renderer over an open session.
func NewRenderer(sess *terminal.Session) *Renderer {
	return &Renderer{sess: sess}
}

// Frame draws one complete frame for the given view. Dimensions are
// read fresh on every call so the layout tracks the current terminal
// size. Draw order is title, label, footer; on screens too small to
// separate the zones the later draws win.
func (r *Renderer) Frame(v core.View) {
	width, height := r.sess.Size()
	r.sess.Clear()

	r.sess.DrawText(0, 0, terminal.ColorDefault, titleText)

	if label := v.Label(); len(label) > 0 {
		x := (width - len(label)) / 2
		if x < 0 {
			x = 0
		}
		r.sess.DrawText(x, height/2, v.ColorID(), label)
	}

	r.sess.DrawText(0, height-1, terminal.ColorDefault, footerText)

	r.sess.Show()
}
