package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/ramanasai/wellness/internal/journal"
)

// ExerciseMarkdown describes an exercise with its numbered steps.
func ExerciseMarkdown(ex journal.Exercise) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ex.Title)
	fmt.Fprintf(&b, "%s\n\n", ex.Description)
	fmt.Fprintf(&b, "**Duration:** %s · **Category:** %s\n\n", ex.Duration, ex.Category)
	b.WriteString("## Instructions\n\n")
	for i, step := range ex.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal with the given glamour style
// ("dark", "light", "notty", ...).
func RenderMarkdown(md, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
