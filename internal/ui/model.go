package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/app"
	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/notify"
)

const statusTTL = 4 * time.Second

// Toasts collects notifications raised by the controller so the model can
// show them in the status bar. Register it with app.WithNotifier.
type Toasts struct {
	pending []string
}

func NewToasts() *Toasts { return &Toasts{} }

func (t *Toasts) Notify(title, message string) error {
	t.pending = append(t.pending, strings.TrimSpace(title+" "+message))
	return nil
}

func (t *Toasts) drain() []string {
	out := t.pending
	t.pending = nil
	return out
}

type Model struct {
	ctrl *app.Controller
	// vm is refreshed by the controller subscription
	vm          *app.ViewModel
	unsubscribe func()

	theme  Theme
	toasts *Toasts
	alert  func(title, message string) error
	log    *zap.Logger

	width, height int

	note     textarea.Model
	exCursor int

	status    string
	statusErr bool
	statusSeq int
}

type Option func(*Model)

func WithTheme(t Theme) Option { return func(m *Model) { m.theme = t } }

func WithToasts(t *Toasts) Option { return func(m *Model) { m.toasts = t } }

// WithAlert replaces the desktop alert used by the daily reminder.
func WithAlert(f func(title, message string) error) Option {
	return func(m *Model) { m.alert = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

func New(ctrl *app.Controller, opts ...Option) Model {
	ed := textarea.New()
	ed.Placeholder = "How was your day? (optional)"
	ed.ShowLineNumbers = false
	ed.CharLimit = 2000
	ed.SetHeight(5)
	ed.SetWidth(60)
	ed.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("#313244"))

	m := Model{
		ctrl:   ctrl,
		theme:  ThemeNamed("default"),
		toasts: NewToasts(),
		alert:  notify.Alert,
		log:    zap.NewNop(),
		note:   ed,
	}
	for _, opt := range opts {
		opt(&m)
	}

	vm := ctrl.Snapshot()
	m.vm = &vm
	m.note.SetValue(vm.Note)
	m.unsubscribe = ctrl.Subscribe(func(next app.ViewModel) { vm = next })
	return m
}

// Close detaches the model from the controller.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// ---------- messages ----------

// QuoteTickMsg advances the motivational quote.
type QuoteTickMsg struct{}

// ReminderMsg is sent when the daily reminder is due.
type ReminderMsg struct{}

type clearStatusMsg struct{ seq int }

type alertResultMsg struct{ err error }

func (m Model) Init() tea.Cmd { return nil }

// ---------- Update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width - 6
		if w > 80 {
			w = 80
		}
		if w > 20 {
			m.note.SetWidth(w)
		}
		return m, nil

	case QuoteTickMsg:
		m.ctrl.NextQuote()
		return m, nil

	case ReminderMsg:
		if m.ctrl.CheckedInToday() {
			return m, nil
		}
		title, body := notify.FormatDailyPrompt(m.vm.Streak)
		alert := m.alert
		cmd := m.setStatus("Time for your daily check-in", false)
		return m, tea.Batch(cmd, func() tea.Msg { return alertResultMsg{err: alert(title, body)} })

	case alertResultMsg:
		if msg.err != nil {
			m.log.Warn("reminder alert failed", zap.Error(msg.err))
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.note.Focused() {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.switchView(m.offsetView(1))
	case "shift+tab":
		return m.switchView(m.offsetView(-1))
	}

	if m.vm.View == app.ViewCheckIn {
		if k == "ctrl+s" {
			return m.checkIn()
		}
		if m.note.Focused() {
			if k == "esc" {
				m.note.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			if v := m.note.Value(); v != m.vm.Note {
				m.ctrl.SetNote(v)
			}
			return m, cmd
		}
	}

	switch k {
	case "q":
		return m, tea.Quit
	case "d":
		return m.switchView(app.ViewDashboard)
	case "c":
		return m.switchView(app.ViewCheckIn)
	case "e":
		if m.vm.SelectedExercise != nil {
			m.ctrl.ClearSelectedExercise()
		}
		return m.switchView(app.ViewExercises)
	case "t":
		return m.switchView(app.ViewTrends)
	}

	switch m.vm.View {
	case app.ViewCheckIn:
		return m.updateCheckIn(k)
	case app.ViewExercises:
		return m.updateExercises(k)
	}
	return m, nil
}

func (m Model) updateCheckIn(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "1", "2", "3", "4", "5":
		_ = m.ctrl.SetSelectedMood(int(k[0] - '0'))
	case "left", "h":
		if m.vm.SelectedMood > journal.MinMood {
			_ = m.ctrl.SetSelectedMood(m.vm.SelectedMood - 1)
		}
	case "right", "l":
		if m.vm.SelectedMood < journal.MaxMood {
			_ = m.ctrl.SetSelectedMood(m.vm.SelectedMood + 1)
		}
	case "n", "i", "enter":
		return m, m.note.Focus()
	}
	return m, nil
}

func (m Model) updateExercises(k string) (tea.Model, tea.Cmd) {
	if m.vm.SelectedExercise != nil {
		switch k {
		case "esc", "backspace", "b":
			m.ctrl.ClearSelectedExercise()
		}
		return m, nil
	}
	switch k {
	case "up", "k":
		if m.exCursor > 0 {
			m.exCursor--
		}
	case "down", "j":
		if m.exCursor < len(journal.Exercises)-1 {
			m.exCursor++
		}
	case "enter", " ":
		if err := m.ctrl.SetSelectedExercise(journal.Exercises[m.exCursor].ID); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
	}
	return m, nil
}

func (m Model) checkIn() (tea.Model, tea.Cmd) {
	if v := m.note.Value(); v != m.vm.Note {
		m.ctrl.SetNote(v)
	}
	if _, err := m.ctrl.HandleCheckIn(); err != nil {
		return m, m.setStatus(fmt.Sprintf("Could not save check-in: %v", err), true)
	}
	m.note.Reset()
	m.note.Blur()

	msg := "Check-in saved!"
	if pending := m.toasts.drain(); len(pending) > 0 {
		msg = pending[len(pending)-1]
	}
	return m, m.setStatus(msg, false)
}

func (m Model) switchView(v app.View) (tea.Model, tea.Cmd) {
	if err := m.ctrl.SetView(v); err != nil {
		return m, m.setStatus(err.Error(), true)
	}
	if v != app.ViewCheckIn {
		m.note.Blur()
	}
	return m, nil
}

func (m Model) offsetView(delta int) app.View {
	n := len(app.Views)
	for i, v := range app.Views {
		if v == m.vm.View {
			return app.Views[((i+delta)%n+n)%n]
		}
	}
	return app.ViewDashboard
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = s, isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
