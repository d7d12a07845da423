// Command lifegrid runs a colony headless for a fixed number of generations
// and logs a census as it goes.
package main

import (
	"context"
	"flag"
	"fmt"
	"hash/fnv"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := app.NewFlags()
	every := flag.Int("every", 50, "log a census every N generations (0 = only the last)")
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, log, colony, err := app.Bootstrap(flags)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer colony.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pace *core.FixedStep
	if cfg.Sim.TPS > 0 {
		pace = core.NewFixedStep(cfg.Sim.TPS)
	}

	start := time.Now()
	generations := cfg.Sim.Generations
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			log.Warn("interrupted", zap.Int("generation", colony.Generation()))
			break
		}
		if pace != nil {
			for !pace.ShouldStep() {
				time.Sleep(pace.Step() / 4)
			}
		}
		colony.Step()
		if *every > 0 && gen%*every == 0 {
			log.Info("census", colony.Census().Fields()...)
		}
		if colony.Census().Total() == 0 {
			log.Info("colony died out", zap.Int("generation", colony.Generation()))
			break
		}
	}

	log.Info("done",
		append(colony.Census().Fields(),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("checksum", checksum(colony.Cells())),
		)...,
	)
	return nil
}

// checksum fingerprints the final grid so runs can be compared for
// determinism.
func checksum(cells []uint8) string {
	h := fnv.New64a()
	_, _ = h.Write(cells)
	return fmt.Sprintf("%016x", h.Sum64())
}
