package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/wellness/internal/app"
	"github.com/ramanasai/wellness/internal/journal"
)

type memStore struct {
	records []journal.MoodRecord
	saveErr error
}

func (s *memStore) Load() ([]journal.MoodRecord, error) { return s.records, nil }

func (s *memStore) Save(records []journal.MoodRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = append([]journal.MoodRecord(nil), records...)
	return nil
}

var testNow = time.Date(2026, time.October, 19, 18, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, store *memStore, opts ...Option) Model {
	t.Helper()
	toasts := NewToasts()
	ctrl := app.New(store, app.WithClock(func() time.Time { return testNow }), app.WithNotifier(toasts))
	require.NoError(t, ctrl.Load())
	m := New(ctrl, append([]Option{WithToasts(toasts)}, opts...)...)
	t.Cleanup(m.Close)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestNewModelStartsOnDashboard(t *testing.T) {
	m := newTestModel(t, &memStore{})
	assert.Equal(t, app.ViewDashboard, m.vm.View)
	assert.Contains(t, m.View(), "No check-in yet today")
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestModel(t, &memStore{})
	var seen []app.View
	for range app.Views {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, m.vm.View)
	}
	assert.Equal(t, []app.View{app.ViewCheckIn, app.ViewExercises, app.ViewTrends, app.ViewDashboard}, seen)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, app.ViewTrends, m.vm.View)
}

func TestJumpKeys(t *testing.T) {
	m := newTestModel(t, &memStore{})
	m = press(t, m, runes("t"))
	assert.Equal(t, app.ViewTrends, m.vm.View)
	m = press(t, m, runes("e"))
	assert.Equal(t, app.ViewExercises, m.vm.View)
	m = press(t, m, runes("d"))
	assert.Equal(t, app.ViewDashboard, m.vm.View)
}

func TestCheckInFlow(t *testing.T) {
	store := &memStore{}
	m := newTestModel(t, store)

	m = press(t, m, runes("c"), runes("5"), tea.KeyMsg{Type: tea.KeyLeft}, runes("n"))
	assert.Equal(t, 4, m.vm.SelectedMood)
	require.True(t, m.note.Focused())

	// q is text while typing
	m = press(t, m, runes("quite a great day"))
	assert.Equal(t, app.ViewCheckIn, m.vm.View)
	assert.Equal(t, "quite a great day", m.vm.Note)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, app.ViewDashboard, m.vm.View)
	assert.Empty(t, m.note.Value())
	assert.Contains(t, m.status, "Check-in saved!")
	require.Len(t, store.records, 1)
	assert.Equal(t, journal.MoodRecord{Date: "2026-10-19", Mood: 4, Note: "quite a great day", Sentiment: journal.SentimentPositive}, store.records[0])

	view := m.View()
	assert.Contains(t, view, "Today's check-in")
	assert.Contains(t, view, "Happy")
}

func TestCheckInSaveFailureShowsError(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	m := newTestModel(t, store)
	m = press(t, m, runes("c"), tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "disk full")
	assert.Equal(t, app.ViewCheckIn, m.vm.View)
}

func TestEscLeavesNoteEditing(t *testing.T) {
	m := newTestModel(t, &memStore{})
	m = press(t, m, runes("c"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.note.Focused())
	m = press(t, m, runes("t"))
	assert.Equal(t, app.ViewTrends, m.vm.View)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, &memStore{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestExerciseListAndDetail(t *testing.T) {
	m := newTestModel(t, &memStore{})
	m = press(t, m, runes("e"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.vm.SelectedExercise)
	assert.Equal(t, journal.Exercises[2].ID, m.vm.SelectedExercise.ID)
	assert.Equal(t, app.ViewExercises, m.vm.View)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.vm.SelectedExercise)
	assert.Contains(t, m.View(), journal.Exercises[0].Title)
}

func TestExerciseCursorStaysInRange(t *testing.T) {
	m := newTestModel(t, &memStore{})
	m = press(t, m, runes("e"), runes("k"))
	assert.Equal(t, 0, m.exCursor)
	for range journal.Exercises {
		m = press(t, m, runes("j"))
	}
	assert.Equal(t, len(journal.Exercises)-1, m.exCursor)
}

func TestQuoteTickAdvancesQuote(t *testing.T) {
	m := newTestModel(t, &memStore{})
	updated, _ := m.Update(QuoteTickMsg{})
	m = updated.(Model)
	assert.Equal(t, 1, m.vm.QuoteIndex)
	assert.Contains(t, m.View(), journal.Quotes[1])
}

func TestReminderOnlyWhenNotCheckedIn(t *testing.T) {
	var alerts []string
	alert := WithAlert(func(title, _ string) error {
		alerts = append(alerts, title)
		return nil
	})

	m := newTestModel(t, &memStore{}, alert)
	updated, cmd := m.Update(ReminderMsg{})
	require.NotNil(t, cmd)
	m = updated.(Model)
	assert.Contains(t, m.status, "daily check-in")

	done := &memStore{records: []journal.MoodRecord{{Date: "2026-10-19", Mood: 3}}}
	m = newTestModel(t, done, alert)
	_, cmd = m.Update(ReminderMsg{})
	assert.Nil(t, cmd)
}

func TestClearStatusIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, &memStore{})
	_ = m.setStatus("first", false)
	_ = m.setStatus("second", false)
	updated, _ := m.Update(clearStatusMsg{seq: 1})
	m = updated.(Model)
	assert.Equal(t, "second", m.status)
	updated, _ = m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, updated.(Model).status)
}

func TestTrendsView(t *testing.T) {
	m := newTestModel(t, &memStore{})
	m = press(t, m, runes("t"))
	assert.Contains(t, m.View(), "No check-ins yet")

	var records []journal.MoodRecord
	for i := 0; i < 9; i++ {
		records = append(records, journal.MoodRecord{Date: journal.DateOf(testNow.AddDate(0, 0, -i)), Mood: 1 + i%5})
	}
	m = newTestModel(t, &memStore{records: records})
	m = press(t, m, runes("t"))
	view := m.View()
	assert.Contains(t, view, "Mood over the last 9 check-ins")
	assert.Contains(t, view, "5 │")
}

func TestSparkline(t *testing.T) {
	points := []journal.ChartPoint{{Mood: 1}, {Mood: 3}, {Mood: 5}, {Mood: 9}}
	assert.Equal(t, "▁▄█ ", Sparkline(points))
}

func TestMoodChart(t *testing.T) {
	chart := MoodChart([]journal.ChartPoint{
		{Label: "Oct 1", Mood: 2},
		{Label: "Oct 2", Mood: 5},
	}, ThemeNamed("").Chart)
	lines := strings.Split(chart, "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "5 │"))
	assert.Contains(t, lines[6], "Oct 1")
	assert.Contains(t, lines[6], "Oct 2")
	assert.Empty(t, MoodChart(nil, ThemeNamed("").Chart))
}

func TestExerciseMarkdown(t *testing.T) {
	ex, ok := journal.ExerciseByID("breathing")
	require.True(t, ok)
	md := ExerciseMarkdown(ex)
	assert.True(t, strings.HasPrefix(md, "# "+ex.Title))
	for i, step := range ex.Instructions {
		assert.Contains(t, md, step)
		if i > 0 {
			assert.Less(t, strings.Index(md, ex.Instructions[i-1]), strings.Index(md, step))
		}
	}

	out, err := RenderMarkdown(md, "notty", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestThemeNamedFallsBack(t *testing.T) {
	assert.Equal(t, "purple", ThemeNamed("Purple").Name)
	assert.Equal(t, "default", ThemeNamed("neon").Name)
}
