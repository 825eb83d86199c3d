// Package session runs the interactive state machine that drives the
// simulation: menu navigation, pattern and size configuration, and the
// timer-driven tick loop with non-blocking keyboard dispatch.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"term-life/internal/core"
	"term-life/internal/life"
	"term-life/internal/pattern"
)

// ErrInterrupted reports that an external interrupt stopped the session.
// The host still exits with status 0; the error only short-circuits any
// remaining simulation logic so the terminal can be restored immediately.
var ErrInterrupted = errors.New("session: interrupted")

// Interactive bounds and defaults.
const (
	MinDim        = 10
	MaxDim        = 100
	DefaultWidth  = 40
	DefaultHeight = 20

	MinDelay  = 100 * time.Millisecond
	MaxDelay  = 500 * time.Millisecond
	DelayStep = 100 * time.Millisecond

	DefaultPattern = pattern.Glider

	// pollTimeout bounds the in-loop key check. Short enough that a
	// keypress is picked up well before the next frame, long enough to
	// avoid busy-spinning.
	pollTimeout = time.Millisecond
)

// State identifies a position in the session state machine.
type State int

const (
	StateMenu State = iota
	StatePatternSelect
	StateSizeConfig
	StateRunning
	StateHelp
	StateTerminated
)

// Options configures a new session. Zero values fall back to defaults.
type Options struct {
	Width   int
	Height  int
	Pattern pattern.Kind
	Color   bool
	Delay   time.Duration
}

// DefaultOptions returns the standard startup configuration: 40×20 board,
// glider, color on, mid-range speed.
func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Pattern: DefaultPattern,
		Color:   true,
		Delay:   (MinDelay + MaxDelay) / 2,
	}
}

// Session owns the grid, the active pattern, and all mutable run state.
// It is the only writer of the grid's buffers.
type Session struct {
	gw Gateway

	grid       *life.Grid
	pat        pattern.Kind
	delay      core.Delay
	generation int
	paused     bool
	color      bool

	state State
}

// New builds a session with the pattern placed on a cleared board. Out of
// range dimensions are snapped back to the defaults rather than rejected,
// so a bad flag value cannot wedge startup.
func New(gw Gateway, opts Options) *Session {
	w, h := opts.Width, opts.Height
	if w < MinDim || w > MaxDim {
		w = DefaultWidth
	}
	if h < MinDim || h > MaxDim {
		h = DefaultHeight
	}
	s := &Session{
		gw:    gw,
		pat:   opts.Pattern,
		delay: core.NewDelay(opts.Delay, MinDelay, MaxDelay, DelayStep),
		color: opts.Color,
		state: StateMenu,
	}
	s.grid = life.New(w, h)
	pattern.Place(s.grid, s.pat)
	return s
}

// Grid exposes the owned grid for verification.
func (s *Session) Grid() *life.Grid { return s.grid }

// ActivePattern returns the currently loaded pattern kind.
func (s *Session) ActivePattern() pattern.Kind { return s.pat }

// Generation returns the monotonic generation counter.
func (s *Session) Generation() int { return s.generation }

// Paused reports whether generation stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration { return s.delay.Interval() }

// State returns the machine's current state.
func (s *Session) State() State { return s.state }

func (s *Session) status() Status {
	return Status{
		Width:      s.grid.Width(),
		Height:     s.grid.Height(),
		Generation: s.generation,
		Alive:      s.grid.Alive(),
		SpeedLevel: s.delay.Level(),
		SpeedMax:   s.delay.Levels(),
		Paused:     s.paused,
		Color:      s.color,
		Pattern:    s.pat.String(),
	}
}

func (s *Session) interrupted() bool {
	select {
	case <-s.gw.Interrupted():
		return true
	default:
		return false
	}
}

// Run drives the state machine until the user exits or the process is
// interrupted. It returns nil on a normal menu exit, ErrInterrupted on an
// external interrupt, and the underlying error on a gateway I/O failure.
func (s *Session) Run() error {
	for s.state != StateTerminated {
		if s.interrupted() {
			return ErrInterrupted
		}
		var err error
		switch s.state {
		case StateMenu:
			err = s.menu()
		case StatePatternSelect:
			err = s.patternSelect()
		case StateSizeConfig:
			err = s.sizeConfig()
		case StateRunning:
			err = s.running()
		case StateHelp:
			err = s.help()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) menu() error {
	if err := s.gw.ShowMenu(s.status()); err != nil {
		return err
	}
	line, err := s.gw.ReadLine("Select option: ")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(line) {
	case "1":
		s.state = StateRunning
	case "2":
		s.state = StatePatternSelect
	case "3":
		s.state = StateSizeConfig
	case "4":
		s.color = !s.color
	case "5":
		s.state = StateHelp
	case "6":
		s.state = StateTerminated
	default:
		return s.gw.Message("Invalid option")
	}
	return nil
}

func (s *Session) patternSelect() error {
	s.state = StateMenu
	if err := s.gw.ShowPatternMenu(s.pat); err != nil {
		return err
	}
	line, err := s.gw.ReadLine("Pattern: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return s.gw.Message("Invalid pattern selection")
	}
	k, err := pattern.FromChoice(n)
	if err != nil {
		return s.gw.Message("Invalid pattern selection")
	}
	s.loadPattern(k)
	return nil
}

// loadPattern clears the board and places the pattern, resetting the
// generation counter for the fresh configuration.
func (s *Session) loadPattern(k pattern.Kind) {
	s.grid.Clear()
	pattern.Place(s.grid, k)
	s.pat = k
	s.generation = 0
}

func (s *Session) sizeConfig() error {
	s.state = StateMenu
	w, err := s.readDimension("Width")
	if err != nil {
		return err
	}
	if w == 0 {
		return nil
	}
	h, err := s.readDimension("Height")
	if err != nil {
		return err
	}
	if h == 0 {
		return nil
	}
	// Resizing destroys all cell state: fresh buffers, default pattern.
	s.grid = life.New(w, h)
	s.loadPattern(DefaultPattern)
	return nil
}

// readDimension prompts for one board dimension. It returns 0 after
// reporting a validation failure; the caller aborts the whole resize so
// the prior grid is left untouched.
func (s *Session) readDimension(name string) (int, error) {
	line, err := s.gw.ReadLine(fmt.Sprintf("%s (%d-%d): ", name, MinDim, MaxDim))
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || n < MinDim || n > MaxDim {
		return 0, s.gw.Message(fmt.Sprintf("%s must be a number in [%d,%d]", name, MinDim, MaxDim))
	}
	return n, nil
}

// running is the tick loop. Iteration order is fixed: render, step (unless
// paused), then a short key poll; a dispatched key skips the interval sleep
// so commands take effect on the very next frame.
func (s *Session) running() error {
	for {
		if s.interrupted() {
			return ErrInterrupted
		}
		if err := s.gw.Render(s.grid.Snapshot(), s.status()); err != nil {
			return err
		}
		if !s.paused {
			s.grid.Step()
			s.generation++
		}
		if r, ok := s.gw.PollKey(pollTimeout); ok {
			if quit := s.dispatch(r); quit {
				s.state = StateMenu
				return nil
			}
			continue
		}
		select {
		case <-s.gw.Interrupted():
			return ErrInterrupted
		case <-time.After(s.delay.Interval()):
		}
	}
}

// dispatch applies one in-loop command. Only lowercase keys are
// recognized; anything else is ignored.
func (s *Session) dispatch(r rune) (quit bool) {
	switch r {
	case 'q':
		return true
	case 'p':
		s.paused = !s.paused
	case 'u':
		s.delay.Up()
	case 'd':
		s.delay.Down()
	}
	return false
}

func (s *Session) help() error {
	s.state = StateMenu
	if err := s.gw.ShowHelp(); err != nil {
		return err
	}
	_, err := s.gw.WaitKey()
	return err
}
