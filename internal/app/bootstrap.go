package app

import (
	"fmt"

	"go.uber.org/zap"

	"lifegrid/internal/colony"
	"lifegrid/internal/config"
	"lifegrid/internal/logging"
)

// Bootstrap loads the configuration named by f (or the defaults), applies
// flag overrides, and builds the logger and colony. The caller owns both:
// Close the colony and Sync the logger when done.
func Bootstrap(f *Flags) (*config.Config, *zap.Logger, *colony.Colony, error) {
	cfg := config.Default()
	if f.Config != "" {
		loaded, err := config.Load(f.Config)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if f.Seed != 0 {
		cfg.Sim.Seed = f.Seed
	}
	if f.TPS > 0 {
		cfg.Sim.TPS = f.TPS
	}
	if f.Generations > 0 {
		cfg.Sim.Generations = f.Generations
	}
	if f.LogFile != "" {
		cfg.Logging.File = f.LogFile
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	col, err := colony.New(*cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("build colony: %w", err)
	}
	return cfg, log, col, nil
}
