// Command lifeterm shows a colony in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := app.NewFlags()
	// stderr belongs to the screen once tcell takes over.
	flags.LogFile = "lifeterm.log"
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, log, colony, err := app.Bootstrap(flags)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer colony.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	tps := cfg.Sim.TPS
	if tps <= 0 {
		tps = 10
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer := term.NewViewer(screen, colony, colony.Matrix().CellSize(), tps, cfg.Sim.Seed, log)
	if err := viewer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
