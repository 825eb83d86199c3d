// Package app holds the process-level configuration surface: command-line
// flags with an optional TOML file underneath.
package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"term-life/internal/pattern"
	"term-life/internal/session"
)

// Config represents the startup parameters for the application. Precedence
// is defaults, then the config file, then explicitly set flags.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Pattern string `toml:"pattern"`
	Color   bool   `toml:"color"`
	Speed   int    `toml:"speed"`

	File string `toml:"-"`
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	return &Config{
		Width:   session.DefaultWidth,
		Height:  session.DefaultHeight,
		Pattern: "glider",
		Color:   true,
		Speed:   3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: glider, blinker, block or beacon")
	fs.BoolVar(&c.Color, "color", c.Color, "render live cells in color")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed level 1-5, 5 fastest")
	fs.StringVar(&c.File, "config", c.File, "optional TOML config file")
}

// Load overlays the TOML file named by -config, keeping any flag the user
// set explicitly on the command line. Call after fs.Parse.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	fromFlags := *c
	if _, err := toml.DecodeFile(c.File, c); err != nil {
		return fmt.Errorf("config %s: %w", c.File, err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			c.Width = fromFlags.Width
		case "h":
			c.Height = fromFlags.Height
		case "pattern":
			c.Pattern = fromFlags.Pattern
		case "color":
			c.Color = fromFlags.Color
		case "speed":
			c.Speed = fromFlags.Speed
		}
	})
	return nil
}

// PatternKind resolves the configured pattern name.
func (c *Config) PatternKind() (pattern.Kind, error) {
	name := strings.ToLower(strings.TrimSpace(c.Pattern))
	for _, k := range pattern.Kinds() {
		if strings.ToLower(k.String()) == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q", c.Pattern)
}

// Options converts the configuration into session options. Dimensions are
// validated against the interactive bounds; the speed level is clamped.
func (c *Config) Options() (session.Options, error) {
	k, err := c.PatternKind()
	if err != nil {
		return session.Options{}, err
	}
	if c.Width < session.MinDim || c.Width > session.MaxDim {
		return session.Options{}, fmt.Errorf("width %d out of range [%d,%d]", c.Width, session.MinDim, session.MaxDim)
	}
	if c.Height < session.MinDim || c.Height > session.MaxDim {
		return session.Options{}, fmt.Errorf("height %d out of range [%d,%d]", c.Height, session.MinDim, session.MaxDim)
	}
	level := c.Speed
	if level < 1 {
		level = 1
	}
	if max := int((session.MaxDelay-session.MinDelay)/session.DelayStep) + 1; level > max {
		level = max
	}
	return session.Options{
		Width:   c.Width,
		Height:  c.Height,
		Pattern: k,
		Color:   c.Color,
		Delay:   session.MaxDelay - time.Duration(level-1)*session.DelayStep,
	}, nil
}
