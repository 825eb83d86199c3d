package session

import (
	"time"

	"term-life/internal/life"
	"term-life/internal/pattern"
)

// Status is the render-time view of the session shown on the status line.
type Status struct {
	Width      int
	Height     int
	Generation int
	Alive      int
	SpeedLevel int
	SpeedMax   int
	Paused     bool
	Color      bool
	Pattern    string
}

// Gateway is the terminal I/O boundary the session drives. Implementations
// own raw-mode setup, escape-sequence drawing, and signal registration; the
// session owns all simulation and menu logic. Blocking calls (ReadLine,
// WaitKey) must abort with ErrInterrupted when the process is interrupted.
type Gateway interface {
	// Render draws the bordered board plus the status line. Errors are
	// unrecoverable and terminate the session.
	Render(f life.Frame, st Status) error

	// ShowMenu, ShowPatternMenu and ShowHelp draw the static pages.
	ShowMenu(st Status) error
	ShowPatternMenu(active pattern.Kind) error
	ShowHelp() error

	// Message displays a short notice (validation failures) before the
	// session returns to the menu.
	Message(text string) error

	// PollKey waits up to timeout for a single keypress.
	PollKey(timeout time.Duration) (rune, bool)

	// ReadLine blocks for one line of input, used by menu and size prompts.
	ReadLine(prompt string) (string, error)

	// WaitKey blocks for any single keypress.
	WaitKey() (rune, error)

	// Interrupted is closed once when the process receives an interrupt
	// or termination signal. It takes priority over any in-progress wait.
	Interrupted() <-chan struct{}
}
