package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/wellness/internal/journal"
)

var sparkLevels = []rune("▁▂▄▆█")

// Sparkline renders one block per point, its height tracking the mood.
func Sparkline(points []journal.ChartPoint) string {
	var b strings.Builder
	for _, p := range points {
		if !journal.ValidMood(p.Mood) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(sparkLevels[p.Mood-journal.MinMood])
	}
	return b.String()
}

// MoodChart draws a column chart with a 1..5 axis. Only the first and last
// labels are printed under the axis.
func MoodChart(points []journal.ChartPoint, style lipgloss.Style) string {
	if len(points) == 0 {
		return ""
	}
	const colW = 2
	var rows []string
	for level := journal.MaxMood; level >= journal.MinMood; level-- {
		var row strings.Builder
		for _, p := range points {
			if p.Mood >= level {
				row.WriteString("█ ")
			} else {
				row.WriteString("  ")
			}
		}
		rows = append(rows, strconv.Itoa(level)+" │"+style.Render(strings.TrimRight(row.String(), " ")))
	}
	rows = append(rows, "  └"+strings.Repeat("─", len(points)*colW))

	first, last := points[0].Label, points[len(points)-1].Label
	labels := "   " + first
	if len(points) > 1 {
		gap := len(points)*colW - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		labels += strings.Repeat(" ", gap) + last
	}
	rows = append(rows, labels)
	return strings.Join(rows, "\n")
}

// progressBar renders value/max as a fixed width bar.
func progressBar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
