package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full runtime configuration of a colony and its drivers.
type Config struct {
	Grid     GridConfig       `toml:"grid"`
	Sim      SimConfig        `toml:"sim"`
	Blob     BlobConfig       `toml:"blob"`
	Hungry   HungryConfig     `toml:"hungry"`
	Spark    SparkConfig      `toml:"spark"`
	Scripted []ScriptedConfig `toml:"scripted"`
	Logging  LoggingConfig    `toml:"logging"`
}

// GridConfig sizes the matrix in world units.
type GridConfig struct {
	CellSize int `toml:"cell_size"`
	Width    int `toml:"width"`  // world units; columns = width / cell_size
	Height   int `toml:"height"` // world units; rows = height / cell_size
}

// SimConfig controls seeding and the run length.
type SimConfig struct {
	Seed        int64   `toml:"seed"`
	DefaultType string  `toml:"default_type"`
	Density     float64 `toml:"density"`      // chance a cell starts alive (0.0-1.0)
	SpawnHealth int     `toml:"spawn_health"` // seeded health is drawn from [1, spawn_health]
	Pattern     string  `toml:"pattern"`      // optional YAML pattern replacing random seeding
	Generations int     `toml:"generations"`
	TPS         int     `toml:"tps"`
}

// BlobConfig tunes the default blob type.
type BlobConfig struct {
	MaxAge int `toml:"max_age"`
}

// HungryConfig tunes the predator type.
type HungryConfig struct {
	Prey       string `toml:"prey"`
	Gain       int    `toml:"gain"`
	Starve     int    `toml:"starve"`
	MaxHealth  int    `toml:"max_health"`
	SeekRadius int    `toml:"seek_radius"`
}

// SparkConfig tunes the Brian's Brain type.
type SparkConfig struct {
	Tail int `toml:"tail"` // refractory generations after firing
}

// ScriptedConfig registers one Lua-ruled type. Glyph is the character the
// terminal viewer draws for it.
type ScriptedConfig struct {
	Name      string `toml:"name"`
	File      string `toml:"file"`
	MaxHealth int    `toml:"max_health"`
	Glyph     string `toml:"glyph"`
}

// LoggingConfig selects the zap level, encoder and destination.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// Load reads a TOML file over the defaults. Relative script, pattern and log
// file paths are resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range cfg.Scripted {
		cfg.Scripted[i].File = resolve(dir, cfg.Scripted[i].File)
	}
	cfg.Sim.Pattern = resolve(dir, cfg.Sim.Pattern)
	cfg.Logging.File = resolve(dir, cfg.Logging.File)
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the colony cannot run with.
func (c *Config) Validate() error {
	if c.Grid.CellSize <= 0 || c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid: cell_size, width and height must be positive (got %d, %d, %d)",
			c.Grid.CellSize, c.Grid.Width, c.Grid.Height)
	}
	if c.Sim.Density < 0 || c.Sim.Density > 1 {
		return fmt.Errorf("sim: density %.3f outside [0, 1]", c.Sim.Density)
	}
	if c.Sim.DefaultType == "" {
		return errors.New("sim: default_type must be set")
	}
	seen := make(map[string]bool, len(c.Scripted))
	for _, s := range c.Scripted {
		if s.Name == "" || s.File == "" {
			return errors.New("scripted: name and file are required")
		}
		if seen[s.Name] {
			return fmt.Errorf("scripted: duplicate name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellSize: 8,
			Width:    640,
			Height:   480,
		},
		Sim: SimConfig{
			Seed:        42,
			DefaultType: "blob",
			Density:     0.3,
			SpawnHealth: 5,
			Generations: 500,
			TPS:         0,
		},
		Blob: BlobConfig{
			MaxAge: 9,
		},
		Hungry: HungryConfig{
			Prey:       "blob",
			Gain:       2,
			Starve:     1,
			MaxHealth:  20,
			SeekRadius: 2,
		},
		Spark: SparkConfig{
			Tail: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
