package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/tinydaw/core"
	"github.com/lixenwraith/tinydaw/render"
	"github.com/lixenwraith/tinydaw/terminal"
)

// openSession is replaced by tests to run against simulation screens.
var openSession = terminal.Open

func main() {
	// Panic recovery. The deferred Close inside run restores the
	// terminal before the stack unwinds to here, so the trace prints
	// onto a sane screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTINYDAW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Debug logging stays off; the binary takes no flags.
	logFile := setupLogging(false)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		if errors.Is(err, terminal.ErrUnavailable) {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		} else {
			log.Printf("exiting on error: %v", err)
		}
		os.Exit(1)
	}
}

// run owns the session from open to close and drives the key/redraw
// loop until quit.
func run() error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	// SIGINT and SIGTERM restore the terminal on their way out. Close
	// is idempotent, so racing the deferred call above is harmless.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		sess.Close()
		os.Exit(0)
	}()

	renderer := render.NewRenderer(sess)
	view := core.ChannelView
	renderer.Frame(view)

	for {
		ev, err := sess.ReadKey()
		if err != nil {
			return err
		}
		if ev.Key == terminal.KeyRune && ev.Rune == 'q' {
			return nil
		}
		view = view.Next(ev)
		renderer.Frame(view)
	}
}
