package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/wellness/internal/app"
	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/version"
)

func (m Model) View() string {
	top := m.renderTopBar()
	quote := m.theme.Quote.Render("“" + m.vm.Quote + "”")
	status := m.statusBar()

	var body string
	switch m.vm.View {
	case app.ViewCheckIn:
		body = m.renderCheckIn()
	case app.ViewExercises:
		if m.vm.SelectedExercise != nil {
			body = m.renderExercise(*m.vm.SelectedExercise)
		} else {
			body = m.renderExerciseList()
		}
	case app.ViewTrends:
		body = m.renderTrends()
	default:
		body = m.renderDashboard()
	}
	body = lipgloss.NewStyle().Padding(1, 2).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, top, quote, body, status)
}

func (m Model) renderTopBar() string {
	tabs := []string{m.theme.TopBar.Render(version.GetShortVersion())}
	for _, v := range app.Views {
		if v == m.vm.View {
			tabs = append(tabs, m.theme.TabActive.Render(v.Title()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(v.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) statusBar() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.Error.Render(m.status)
		}
		return m.theme.Success.Render(m.status)
	}
	hints := "tab/shift+tab switch • d c e t jump • q quit"
	switch m.vm.View {
	case app.ViewCheckIn:
		if m.note.Focused() {
			hints = "esc stop editing • ctrl+s save • tab switch"
		} else {
			hints = "1-5/←→ mood • n write note • ctrl+s save • tab switch • q quit"
		}
	case app.ViewExercises:
		if m.vm.SelectedExercise != nil {
			hints = "esc back • tab switch • q quit"
		} else {
			hints = "j/k move • enter open • tab switch • q quit"
		}
	}
	return m.theme.StatusBar.Render(hints)
}

func moodText(value int) string {
	if mood, ok := journal.MoodFor(value); ok {
		return mood.Glyph + " " + mood.Label
	}
	return fmt.Sprintf("%d", value)
}

// ----- dashboard -----

func (m Model) renderDashboard() string {
	vm := m.vm
	card := func(label, value string) string {
		return m.theme.Card.Width(20).Render(m.theme.Label.Render(label) + "\n" + m.theme.Value.Render(value))
	}
	avg := journal.FormatAverage(vm.AvgMood, vm.HasAvg)
	if vm.HasAvg {
		avg += "/5"
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Current streak", fmt.Sprintf("🔥 %d days", vm.Streak)),
		card("Average mood", avg),
		card("Check-ins", fmt.Sprintf("%d", vm.Count)),
	)

	sections := []string{cards}
	if vm.Badge != nil {
		sections = append(sections, m.theme.Success.Render(vm.Badge.Icon+" "+vm.Badge.Text))
	}

	if vm.Today != nil {
		today := m.theme.Title.Render("Today's check-in") + "\n" + moodText(vm.Today.Mood)
		if strings.TrimSpace(vm.Today.Note) != "" {
			today += "\n" + vm.Today.Note
		}
		if vm.Today.Sentiment != "" {
			today += "\n" + m.theme.Label.Render("sentiment: "+string(vm.Today.Sentiment))
		}
		sections = append(sections, m.theme.Card.Render(today))
	} else {
		sections = append(sections, m.theme.Hint.Render("No check-in yet today. Press c to check in."))
	}

	if len(vm.Sparkline) > 0 {
		spark := m.theme.Title.Render("Last 7 check-ins") + "\n" + m.theme.Chart.Render(Sparkline(vm.Sparkline)) +
			"  " + m.theme.Label.Render(vm.Sparkline[0].Label+" → "+vm.Sparkline[len(vm.Sparkline)-1].Label)
		sections = append(sections, spark)
	}

	if vm.Trend != journal.TrendUnavailable {
		sections = append(sections, m.renderInsights())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInsights() string {
	vm := m.vm
	lines := []string{m.theme.Title.Render("Insights")}
	if vm.BestDay != nil {
		lines = append(lines, fmt.Sprintf("Best day: %s (%s)", vm.BestDay.Date, moodText(vm.BestDay.Mood)))
	}
	lines = append(lines,
		fmt.Sprintf("Average: %s %s", progressBar(vm.AvgMood, journal.MaxMood, 20), journal.FormatAverage(vm.AvgMood, vm.HasAvg)),
		"Trend: "+vm.Trend.Message(),
	)
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

// ----- check-in -----

func (m Model) renderCheckIn() string {
	var moods []string
	for _, mood := range journal.Moods {
		label := fmt.Sprintf("%d %s\n%s", mood.Value, mood.Glyph, mood.Label)
		if mood.Value == m.vm.SelectedMood {
			moods = append(moods, m.theme.Selected.Render(label))
		} else {
			moods = append(moods, m.theme.Card.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("How are you feeling today?"),
		lipgloss.JoinHorizontal(lipgloss.Top, moods...),
		"",
		m.theme.Label.Render("Note"),
		m.note.View(),
	)
}

// ----- exercises -----

func (m Model) renderExerciseList() string {
	lines := []string{m.theme.Title.Render("Guided exercises")}
	for i, ex := range journal.Exercises {
		text := fmt.Sprintf("%s  %s · %s\n%s", ex.Title, ex.Duration, ex.Category, m.theme.Label.Render(ex.Description))
		if i == m.exCursor {
			lines = append(lines, m.theme.Selected.Render(text))
		} else {
			lines = append(lines, m.theme.Card.Render(text))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderExercise(ex journal.Exercise) string {
	width := m.width - 4
	if width > 80 || width <= 0 {
		width = 80
	}
	out, err := RenderMarkdown(ExerciseMarkdown(ex), m.theme.Markdown, width)
	if err != nil {
		return ExerciseMarkdown(ex)
	}
	return strings.TrimRight(out, "\n")
}

// ----- trends -----

func (m Model) renderTrends() string {
	vm := m.vm
	if len(vm.ChartData) == 0 {
		return m.theme.Hint.Render("No check-ins yet. Your mood chart appears after your first check-in.")
	}
	lines := []string{
		m.theme.Title.Render(fmt.Sprintf("Mood over the last %d check-ins", len(vm.ChartData))),
		MoodChart(vm.ChartData, m.theme.Chart),
		"",
		fmt.Sprintf("Average mood %s across %d check-ins", journal.FormatAverage(vm.AvgMood, vm.HasAvg), vm.Count),
	}
	if vm.Trend != journal.TrendUnavailable {
		lines = append(lines, vm.Trend.Message())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
