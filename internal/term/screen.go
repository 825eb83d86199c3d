// Package term implements the session's terminal gateway on top of tcell:
// raw-mode screen handling, key delivery, and interrupt registration.
package term

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"term-life/internal/session"
)

// Screen is a tcell-backed session.Gateway. Key events are pumped into a
// buffered channel by a background goroutine so the session can poll with
// a bounded timeout instead of blocking on the event queue.
type Screen struct {
	sc tcell.Screen

	keys      chan rune
	interrupt chan struct{}
	intOnce   sync.Once
	stop      chan struct{}
	eg        errgroup.Group

	// row tracks the next free line while drawing static pages, so
	// ReadLine knows where to place its prompt.
	row    int
	notice string
}

// NewScreen initializes the default terminal screen and starts the event
// pump and signal watcher.
func NewScreen() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := sc.Init(); err != nil {
		return nil, err
	}
	return Attach(sc), nil
}

// Attach wraps an already-initialized tcell screen. Tests use it with
// tcell's SimulationScreen.
func Attach(sc tcell.Screen) *Screen {
	g := &Screen{
		sc:        sc,
		keys:      make(chan rune, 16),
		interrupt: make(chan struct{}),
		stop:      make(chan struct{}),
	}
	sc.SetStyle(styleDefault)
	g.eg.Go(g.pump)
	g.eg.Go(g.watchSignals)
	return g
}

// Close restores the terminal and waits for the background goroutines.
// Safe to call after an interrupt has already fired.
func (g *Screen) Close() {
	close(g.stop)
	g.sc.Fini()
	_ = g.eg.Wait()
}

// Interrupted is closed once on Ctrl+C or a termination signal.
func (g *Screen) Interrupted() <-chan struct{} { return g.interrupt }

func (g *Screen) fireInterrupt() {
	g.intOnce.Do(func() { close(g.interrupt) })
}

// pump forwards tcell key events into the key channel. It exits when Fini
// makes PollEvent return nil.
func (g *Screen) pump() error {
	for {
		ev := g.sc.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.sc.Sync()
		case *tcell.EventKey:
			var r rune
			switch ev.Key() {
			case tcell.KeyCtrlC:
				g.fireInterrupt()
				continue
			case tcell.KeyEnter:
				r = '\n'
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				r = '\b'
			case tcell.KeyRune:
				r = ev.Rune()
			default:
				continue
			}
			select {
			case g.keys <- r:
			default: // drop when the buffer is full rather than block the pump
			}
		}
	}
}

// watchSignals maps SIGINT/SIGTERM onto the interrupt channel so a kill
// from outside the terminal behaves like Ctrl+C.
func (g *Screen) watchSignals() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	select {
	case <-sig:
		g.fireInterrupt()
	case <-g.stop:
	}
	return nil
}

// PollKey waits up to timeout for a keypress. It returns immediately with
// no key once an interrupt has fired.
func (g *Screen) PollKey(timeout time.Duration) (rune, bool) {
	select {
	case r := <-g.keys:
		return r, true
	case <-g.interrupt:
		return 0, false
	case <-time.After(timeout):
		return 0, false
	}
}

// WaitKey blocks for a single keypress.
func (g *Screen) WaitKey() (rune, error) {
	select {
	case r := <-g.keys:
		return r, nil
	case <-g.interrupt:
		return 0, session.ErrInterrupted
	}
}

// ReadLine is a minimal echoing line editor used by the menu and size
// prompts: Enter submits, Backspace edits, interrupt aborts.
func (g *Screen) ReadLine(prompt string) (string, error) {
	row := g.row
	var buf []rune
	for {
		g.drawLine(row, prompt+string(buf)+" ", styleInput)
		g.sc.ShowCursor(len(prompt)+len(buf), row)
		g.sc.Show()
		select {
		case r := <-g.keys:
			switch r {
			case '\n':
				g.sc.HideCursor()
				return string(buf), nil
			case '\b':
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			default:
				buf = append(buf, r)
			}
		case <-g.interrupt:
			g.sc.HideCursor()
			return "", session.ErrInterrupted
		}
	}
}

// Message stores a notice rendered on the next static page. The session
// returns to the menu automatically, so the notice rides along instead of
// blocking for an acknowledgement.
func (g *Screen) Message(text string) error {
	g.notice = text
	return nil
}
