package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"term-life/internal/app"
	"term-life/internal/session"
	"term-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Fatalf("load config: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	gw, err := term.NewScreen()
	if err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	runErr := session.New(gw, opts).Run()

	// Restore the terminal before reporting anything. An interrupt exits
	// with status 0 like a normal quit; only gateway I/O failures are
	// surfaced as non-zero.
	gw.Close()
	if runErr != nil && !errors.Is(runErr, session.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
