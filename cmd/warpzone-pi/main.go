// Warpzone-pi renders the animated logo on the embedded board through the
// programmable-shader backend, with the pulsing tint and camera jitter.
// It runs until the process is killed unless -exit-on-key is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/warpzone/logo"
)

func main() {
	cfg := logo.EmbeddedConfig()
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	finish := logo.BindFlags(fs, &cfg)
	fs.BoolVar(&cfg.Events, "events", cfg.Events, "alternate the events scene with the logo")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := finish(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logo.SetLogger(log)

	if err := logo.Run(cfg); err != nil {
		log.Error("warpzone-pi failed", "err", err)
		os.Exit(1)
	}
}
