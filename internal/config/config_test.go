package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/sokosolve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, config.Default(), config.Load())
}

func TestLoadUnparsableFileReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sokosolve")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not valid toml ["), 0644))

	assert.Equal(t, config.Default(), config.Load())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c := config.Config{
		Budget:             50000,
		DisableDeadSquares: true,
		DisableTunnels:     true,
		LevelsDir:          "custom-levels",
	}
	require.NoError(t, config.Save(c))

	assert.Equal(t, c, config.Load())
}

func TestLoadEmptyLevelsDirFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A zero-valued LevelsDir in the saved file (the zero value of the
	// toml field) must not leave the loaded config with an empty,
	// unusable directory.
	require.NoError(t, config.Save(config.Config{LevelsDir: ""}))

	assert.Equal(t, config.Default().LevelsDir, config.Load().LevelsDir)
}

func TestSaveCreatesConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, config.Save(config.Default()))

	dir, err := config.Dir()
	require.NoError(t, err)
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
}
