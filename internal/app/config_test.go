package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"term-life/internal/pattern"
	"term-life/internal/session"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg, fs
}

func TestDefaults(t *testing.T) {
	cfg, fs := parse(t)
	if err := cfg.Load(fs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Width != session.DefaultWidth || opts.Height != session.DefaultHeight {
		t.Fatalf("default board %dx%d", opts.Width, opts.Height)
	}
	if opts.Pattern != pattern.Glider || !opts.Color {
		t.Fatal("default pattern/color wrong")
	}
	if opts.Delay != 300*time.Millisecond {
		t.Fatalf("default delay %v, expected 300ms", opts.Delay)
	}
}

func TestFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	data := "width = 60\nheight = 30\npattern = \"beacon\"\nspeed = 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, fs := parse(t, "-config", path)
	if err := cfg.Load(fs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Width != 60 || opts.Height != 30 {
		t.Fatalf("board %dx%d, expected 60x30 from file", opts.Width, opts.Height)
	}
	if opts.Pattern != pattern.Beacon {
		t.Fatalf("pattern %v, expected beacon from file", opts.Pattern)
	}
	if opts.Delay != session.MinDelay {
		t.Fatalf("delay %v, expected fastest from file speed 5", opts.Delay)
	}
}

func TestFlagsBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	if err := os.WriteFile(path, []byte("width = 60\nheight = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, fs := parse(t, "-config", path, "-w", "80")
	if err := cfg.Load(fs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 80 {
		t.Fatalf("width %d, explicit flag must beat the file", cfg.Width)
	}
	if cfg.Height != 30 {
		t.Fatalf("height %d, expected 30 from file", cfg.Height)
	}
}

func TestMissingFileFails(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "nope.toml"))
	if err := cfg.Load(fs); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestOptionsValidation(t *testing.T) {
	cfg, _ := parse(t, "-w", "5")
	if _, err := cfg.Options(); err == nil {
		t.Fatal("width 5 must be rejected")
	}

	cfg, _ = parse(t, "-h", "101")
	if _, err := cfg.Options(); err == nil {
		t.Fatal("height 101 must be rejected")
	}

	cfg, _ = parse(t, "-pattern", "spaceship")
	if _, err := cfg.Options(); err == nil {
		t.Fatal("unknown pattern must be rejected")
	}
}

func TestSpeedClamped(t *testing.T) {
	cfg, _ := parse(t, "-speed", "99")
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Delay != session.MinDelay {
		t.Fatalf("delay %v, expected clamp to fastest", opts.Delay)
	}

	cfg, _ = parse(t, "-speed", "0")
	opts, err = cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Delay != session.MaxDelay {
		t.Fatalf("delay %v, expected clamp to slowest", opts.Delay)
	}
}
