// Package config loads and persists the solver's tunable options.
//
// Configuration is stored in ~/.sokosolve/config.toml. Loading never
// fails: a missing or unparsable file falls back to defaults. Saving
// can fail and returns an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultLevelsDir = "screens"

// Config holds the solver's tunable knobs, persisted across runs.
type Config struct {
	// Budget caps the number of expanded nodes; zero means unlimited.
	Budget int
	// DisableDeadSquares turns off dead-square pruning.
	DisableDeadSquares bool
	// DisableTunnels turns off tunnel-push priority boosting.
	DisableTunnels bool
	// LevelsDir overrides the directory level files are read from.
	LevelsDir string
}

// Default returns the built-in defaults: no node budget, all pruning
// enabled, levels read from ./screens.
func Default() Config {
	return Config{
		Budget:             0,
		DisableDeadSquares: false,
		DisableTunnels:     false,
		LevelsDir:          defaultLevelsDir,
	}
}

type fileFormat struct {
	Budget             int    `toml:"budget"`
	DisableDeadSquares bool   `toml:"disable_dead_squares"`
	DisableTunnels     bool   `toml:"disable_tunnels"`
	LevelsDir          string `toml:"levels_dir"`
}

func toFile(c Config) fileFormat {
	return fileFormat{
		Budget:             c.Budget,
		DisableDeadSquares: c.DisableDeadSquares,
		DisableTunnels:     c.DisableTunnels,
		LevelsDir:          c.LevelsDir,
	}
}

func fromFile(f fileFormat) Config {
	c := Config{
		Budget:             f.Budget,
		DisableDeadSquares: f.DisableDeadSquares,
		DisableTunnels:     f.DisableTunnels,
		LevelsDir:          f.LevelsDir,
	}
	if c.LevelsDir == "" {
		c.LevelsDir = defaultLevelsDir
	}
	return c
}

// Load reads ~/.sokosolve/config.toml. If the file is missing or
// unparsable, it returns Default(). This function never errors.
func Load() Config {
	path, err := filePath()
	if err != nil {
		return Default()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default()
	}

	var f fileFormat
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Default()
	}
	return fromFile(f)
}

// Save writes c to ~/.sokosolve/config.toml, creating the directory if
// needed.
func Save(c Config) error {
	dir, err := Dir()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	path, err := filePath()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(toFile(c)); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
