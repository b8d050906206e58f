// SPDX-License-Identifier: Unlicense OR MIT

// Command inputdemo routes the input of a terminal or desktop window
// into a few nested boxes and shows the interaction state of each box.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/config"
)

var (
	configPath = flag.String("config", "inputdemo.toml", "configuration file (.toml, .yaml or .yml)")
	tracePath  = flag.String("trace", "", "record input to `file`, overriding the configuration")
	replayPath = flag.String("replay", "", "replay the input recorded in `file` instead of opening a window")
	backend    = flag.String("backend", "terminal", "window backend (terminal, desktop)")
	verbose    = flag.Bool("v", false, "log every event delivered to a box")
)

const mainUsage = `The inputdemo command routes window input into a tree of boxes.

Usage:

	inputdemo [flags]

Press q or Ctrl-C to quit. Flags:

`

func main() {
	log.SetFlags(0)
	log.SetPrefix("inputdemo: ")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		log.Fatal(err)
	}
}

func mainErr() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *tracePath != "" {
		cfg.Trace.Path = *tracePath
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *replayPath != "" {
		return replayFile(ctx, cfg, *replayPath)
	}

	opts := []app.Option{app.WithConfig(cfg)}
	if p := cfg.Trace.Path; p != "" {
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, app.Trace(f))
	}
	switch *backend {
	case "terminal":
		err = runTerminal(ctx, cfg, opts)
	case "desktop":
		err = runDesktop(ctx, cfg, opts)
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}
