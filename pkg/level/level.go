// Package level discovers and parses Sokoban level files. It is a
// collaborator, not part of the push-space search core: it only
// produces the width/height/tiles triple the core's board.NewBoard
// consumes.
package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/herohde/sokosolve/pkg/board"
)

// symbols maps a level-file character to the tile roles it sets.
var symbols = map[rune]board.Tile{
	' ': board.Floor,
	'#': board.Wall,
	'$': board.Box,
	'.': board.Goal,
	'@': board.Player,
	'*': board.Box | board.Goal,
	'+': board.Player | board.Goal,
}

// Level is the parsed form of a level file: a flat, row-major tile
// sequence of width*height entries.
type Level struct {
	Name   string
	Width  int
	Height int
	Tiles  []board.Tile
}

// Parse decodes raw level text into a Level. Rows are separated by
// newlines; short rows are padded with Floor on the right to the
// width of the longest row.
func Parse(name, text string) (Level, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	width := 0
	for _, l := range lines {
		if n := len(l); n > width {
			width = n
		}
	}
	height := len(lines)
	if width == 0 || height == 0 {
		return Level{}, fmt.Errorf("level %s: empty", name)
	}

	tiles := make([]board.Tile, width*height)
	for r, l := range lines {
		for c, ch := range l {
			t, ok := symbols[ch]
			if !ok {
				return Level{}, fmt.Errorf("level %s: unrecognized symbol %q at row %d col %d", name, ch, r, c)
			}
			tiles[r*width+c] = t
		}
		// Remaining columns in a short row stay board.Floor (zero value).
	}

	return Level{Name: name, Width: width, Height: height, Tiles: tiles}, nil
}

// LoadAll scans dir for regular files and parses each as a level,
// returning them ordered per suffixLess: by ascending numeric (really
// lexicographic-length-then-lexicographic) extension, the part of the
// filename after its final '.'.
func LoadAll(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return suffixLess(names[i], names[j])
	})

	levels := make([]Level, 0, len(names))
	for _, n := range names {
		path := filepath.Join(dir, n)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("level: read %s: %w", path, err)
		}
		lvl, err := Parse(n, string(data))
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// suffixLess orders filenames by the portion after their final '.':
// shorter suffixes first, then lexicographically within equal lengths.
func suffixLess(left, right string) bool {
	l := suffix(left)
	r := suffix(right)
	if len(l) != len(r) {
		return len(l) < len(r)
	}
	return l < r
}

func suffix(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name
	}
	return name[i+1:]
}
