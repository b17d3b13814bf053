// Warpzone renders the animated logo on a desktop machine through the
// matrix-stack backend. The single positional argument selects whether the
// events scene alternates with the logo: any value starting with "n"
// disables it.
//
//	warpzone [flags] <events|noevents>
//
// Any key press exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/warpzone/logo"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <events|noevents>\n\nFlags must come before the argument.\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}
}

func main() {
	cfg := logo.DesktopConfig()
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	finish := logo.BindFlags(fs, &cfg)
	fs.Usage = usage(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	events, err := logo.EventsFromArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}
	cfg.Events = events
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
		log.Error("warpzone failed", "err", err)
		os.Exit(1)
	}
}
