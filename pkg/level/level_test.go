package level_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/sokosolve/pkg/board"
	"github.com/herohde/sokosolve/pkg/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	lvl, err := level.Parse("1.txt", "#####\n#@$.#\n#####")
	require.NoError(t, err)
	assert.Equal(t, 5, lvl.Width)
	assert.Equal(t, 3, lvl.Height)
	assert.Equal(t, board.Wall, lvl.Tiles[0])
	assert.Equal(t, board.Player, lvl.Tiles[6])
	assert.Equal(t, board.Box, lvl.Tiles[7])
	assert.Equal(t, board.Goal, lvl.Tiles[8])
}

func TestParsePadsShortRows(t *testing.T) {
	lvl, err := level.Parse("1.txt", "####\n#@$.#\n####")
	require.NoError(t, err)
	assert.Equal(t, 5, lvl.Width)
	// Row 0 is 4 chars; the 5th column must be padded with Floor.
	assert.Equal(t, board.Floor, lvl.Tiles[4])
}

func TestParseCombinedTiles(t *testing.T) {
	lvl, err := level.Parse("1.txt", "#####\n#@*.#\n#####")
	require.NoError(t, err)
	assert.Equal(t, board.BoxOnGoal, lvl.Tiles[7])
}

func TestParseRejectsUnknownSymbol(t *testing.T) {
	_, err := level.Parse("1.txt", "#####\n#@X.#\n#####")
	assert.Error(t, err)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := level.Parse("1.txt", "")
	assert.Error(t, err)
}

func TestLoadAllOrdersByNumericSuffix(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "level.2", "#####\n#@$.#\n#####")
	write(t, dir, "level.10", "#####\n#@$.#\n#####")
	write(t, dir, "level.1", "#####\n#@$.#\n#####")

	levels, err := level.LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	// Shorter suffixes sort before longer ones regardless of numeric
	// value; "1" and "2" (length 1) both precede "10" (length 2).
	assert.Equal(t, []string{"level.1", "level.2", "level.10"}, names(levels))
}

func write(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
}

func names(levels []level.Level) []string {
	var out []string
	for _, l := range levels {
		out = append(out, l.Name)
	}
	return out
}
