// Package render prints a Sokoban board and its solution to the
// terminal. It is a collaborator, not part of the push-space search
// core: the core hands it a board.Board plus a board.State and it owns
// every presentation decision from there.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/herohde/sokosolve/pkg/board"
)

// Config controls how a BoardRenderer draws a board.
type Config struct {
	UseColors bool
}

// DefaultConfig enables colorized output, the common terminal case.
func DefaultConfig() Config {
	return Config{UseColors: true}
}

// BoardRenderer draws a board.Board/board.State pair as text.
type BoardRenderer struct {
	config Config
}

func NewBoardRenderer(config Config) *BoardRenderer {
	return &BoardRenderer{config: config}
}

// Render draws b (walls and goals) with boxes and player from s, one row per grid
// row, squares separated by a single space.
func (r *BoardRenderer) Render(b *board.Board, s board.State) string {
	isBox := make(map[int]bool, len(s.Boxes))
	for _, box := range s.Boxes {
		isBox[box] = true
	}

	var out strings.Builder
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			sq := row*b.Width() + col
			if col > 0 {
				out.WriteString(" ")
			}
			out.WriteString(r.symbol(b, sq, isBox[sq], sq == s.Player))
		}
		out.WriteString("\n")
	}
	return out.String()
}

func (r *BoardRenderer) symbol(b *board.Board, sq int, hasBox, hasPlayer bool) string {
	goal := b.IsGoal(sq)

	var ch string
	switch {
	case b.IsWall(sq):
		ch = "#"
	case hasPlayer && goal:
		ch = "+"
	case hasPlayer:
		ch = "@"
	case hasBox && goal:
		ch = "*"
	case hasBox:
		ch = "$"
	case goal:
		ch = "."
	default:
		ch = " "
	}

	if !r.config.UseColors {
		return ch
	}
	return r.style(hasBox, hasPlayer, goal, b.IsWall(sq)).Render(ch)
}

func (r *BoardRenderer) style(hasBox, hasPlayer, goal, wall bool) lipgloss.Style {
	switch {
	case wall:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	case hasBox && goal:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32")).Bold(true)
	case hasBox:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#D2691E")).Bold(true)
	case hasPlayer:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#1E90FF")).Bold(true)
	case goal:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	default:
		return lipgloss.NewStyle()
	}
}
