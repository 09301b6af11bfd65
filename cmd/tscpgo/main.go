// Package main is the entry point for tscpgo.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tscpgo/internal/book"
	"tscpgo/internal/clock"
	"tscpgo/internal/config"
	"tscpgo/internal/display"
	"tscpgo/internal/engine"
	"tscpgo/internal/eval"
	"tscpgo/internal/search"
	"tscpgo/internal/shell"
	"tscpgo/internal/version"
	"tscpgo/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	xboardMode := flag.Bool("xboard", false, "Speak the xboard/WinBoard engine protocol on stdin/stdout")
	watchMode := flag.Bool("watch", false, "Watch the engine play itself in a terminal UI")
	watchSpeed := flag.Duration("watch-speed", 400*time.Millisecond, "Delay between plies in -watch mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	cfg := config.LoadConfig()

	if *watchMode {
		os.Exit(runWatch(cfg, *watchSpeed))
		return
	}

	session := shell.NewSession(cfg, os.Stdout)

	var err error
	if *xboardMode {
		err = session.RunXBoard(os.Stdin)
	} else {
		err = session.RunInteractive(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscpgo: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("tscpgo %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.BuildDate)
	fmt.Printf("Git commit: %s\n", version.GitCommit)
}

// runWatch sets up an engine-vs-itself game and narrates it with a
// bubbletea program, returning a process exit code.
func runWatch(cfg config.Config, speed time.Duration) int {
	newEngine := func() *search.Engine {
		e := search.NewEngine(engine.NewGame(), eval.Evaluate, book.NoBook, clock.NowMS)
		e.MaxTime = cfg.MaxTimeMS
		e.MaxDepth = cfg.MaxDepth
		return e
	}

	game := watch.NewGame(newEngine(), newEngine())
	renderer := display.NewRenderer(display.Config{
		UseUnicode: cfg.UseUnicode,
		ShowCoords: cfg.ShowCoords,
		UseColors:  cfg.UseColors,
		Theme:      display.ParseThemeName(cfg.Theme),
	})
	model := watch.NewModel(game, renderer, speed, func(mv engine.Move) string { return mv.String() })

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tscpgo: %v\n", err)
		return 1
	}
	return 0
}
