package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/panelpick/panelpick/internal/indicator"
	"github.com/panelpick/panelpick/internal/reporting"
)

// formatReport renders the selection result as the human-readable text
// report printed to stdout.
func formatReport(r *reporting.Report) string {
	var b strings.Builder

	it := r.Item
	b.WriteString(fmt.Sprintf("Selected: %s (item %d)\n", it.DisplayName(), it.ID))
	b.WriteString(fmt.Sprintf("  duration: %d min\n", it.Duration))
	b.WriteString(fmt.Sprintf("  category: %s\n", it.Category))
	b.WriteString(fmt.Sprintf("  cost:     %.2f\n", it.Cost))
	b.WriteString(fmt.Sprintf("  score:    %.1f\n", it.Score))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Objective value: %.4f\n", r.Objective))
	b.WriteString("\n")

	b.WriteString("Evaluator satisfaction:\n")
	nameW := runewidth.StringWidth("EVALUATOR")
	for _, s := range r.Scores {
		if w := runewidth.StringWidth(s.Evaluator.DisplayName()); w > nameW {
			nameW = w
		}
	}
	b.WriteString(fmt.Sprintf("  %s  MET  SCORE\n", padRight("EVALUATOR", nameW)))
	for _, s := range r.Scores {
		b.WriteString(fmt.Sprintf("  %s  %d/%d  %.2f\n",
			padRight(s.Evaluator.DisplayName(), nameW),
			s.Satisfied, indicator.NumDimensions, s.Score))
	}

	return b.String()
}

// padRight pads s with spaces to the given display width, runewidth-aware so
// non-ASCII evaluator names still line up.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
