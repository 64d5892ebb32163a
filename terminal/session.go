package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	// ErrUnavailable means the terminal could not be acquired at startup.
	ErrUnavailable = errors.New("terminal unavailable")

	// ErrClosed means the screen went away under a blocked read.
	ErrClosed = errors.New("terminal closed")
)

// newScreen is replaced by tests to inject simulation screens.
var newScreen = tcell.NewScreen

// Session owns the terminal screen between Open and Close.
type Session struct {
	screen  tcell.Screen
	palette map[int]tcell.Style

	mu     sync.Mutex
	closed bool
}

// Open acquires the terminal: verifies stdin is a TTY, enters the
// alternate screen in raw mode, and hides the cursor. Every failure
// wraps ErrUnavailable.
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", ErrUnavailable)
	}
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	screen.HideCursor()
	return NewSession(screen), nil
}

// NewSession wraps an already initialized screen. Tests use it to run
// sessions over simulation screens.
func NewSession(screen tcell.Screen) *Session {
	return &Session{
		screen:  screen,
		palette: defaultPalette(),
	}
}

// Size reports the current screen dimensions. Callers re-query per
// frame; no stability across calls is assumed.
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// Clear blanks the back buffer.
func (s *Session) Clear() {
	s.screen.Clear()
}

// DrawText writes text left to right starting at (x, y) in the palette
// color for id. Cells falling outside the screen are dropped.
func (s *Session) DrawText(x, y, colorID int, text string) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}
	style := s.style(colorID)
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 && col < width {
			s.screen.SetContent(col, y, ch, nil, style)
		}
		col += w
	}
}

// Show flushes the back buffer to the terminal.
func (s *Session) Show() {
	s.screen.Show()
}

// ReadKey blocks until the next key press. Resizes are absorbed here;
// the new dimensions take effect when the caller next draws a frame.
func (s *Session) ReadKey() (Event, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return decodeKey(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return Event{}, fmt.Errorf("read key: %w", ErrClosed)
		}
	}
}

// Close restores the terminal. Safe to call multiple times.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}
