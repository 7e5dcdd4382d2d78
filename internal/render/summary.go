package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/herohde/sokosolve/pkg/search"
)

// SummaryRenderer prints the terminal outcome of a Driver.Solve call.
type SummaryRenderer struct {
	config Config
}

func NewSummaryRenderer(config Config) *SummaryRenderer {
	return &SummaryRenderer{config: config}
}

// Render describes outcome and the number of nodes expanded.
func (r *SummaryRenderer) Render(level string, outcome search.Outcome, result search.Result) string {
	line := fmt.Sprintf("%s: %s (%d nodes expanded)", level, outcome, result.Expanded)
	if !r.config.UseColors {
		return line
	}
	return r.statusStyle(outcome).Render(line)
}

func (r *SummaryRenderer) statusStyle(outcome search.Outcome) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch outcome {
	case search.Solved:
		return style.Foreground(lipgloss.Color("#32CD32"))
	case search.BudgetExceeded:
		return style.Foreground(lipgloss.Color("#FFD700"))
	default:
		return style.Foreground(lipgloss.Color("#DC143C"))
	}
}
