package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/db"
	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/notify"
)

var (
	ErrInvalidMood     = errors.New("mood must be between 1 and 5")
	ErrUnknownView     = errors.New("unknown view")
	ErrUnknownExercise = errors.New("unknown exercise")
)

type View string

const (
	ViewDashboard View = "dashboard"
	ViewCheckIn   View = "checkin"
	ViewExercises View = "exercises"
	ViewTrends    View = "trends"
)

// Views lists the navigation tabs in display order.
var Views = []View{ViewDashboard, ViewCheckIn, ViewExercises, ViewTrends}

func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewCheckIn:
		return "Check-in"
	case ViewExercises:
		return "Exercises"
	case ViewTrends:
		return "Trends"
	}
	return string(v)
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// RecordStore is the persistence the controller needs. *db.RecordGateway
// satisfies it.
type RecordStore interface {
	Load() ([]journal.MoodRecord, error)
	Save(records []journal.MoodRecord) error
}

// ViewModel is an immutable snapshot handed to renderers.
type ViewModel struct {
	View             View
	Records          []journal.MoodRecord
	SelectedMood     int
	Note             string
	SelectedExercise *journal.Exercise
	QuoteIndex       int
	Quote            string

	Streak    int
	AvgMood   float64
	HasAvg    bool
	Count     int
	ChartData []journal.ChartPoint
	Sparkline []journal.ChartPoint
	Badge     *journal.Badge
	Today     *journal.MoodRecord
	BestDay   *journal.MoodRecord
	Trend     journal.Trend
}

// Controller owns the journal state. It is not safe for concurrent use; the
// TUI only touches it from its update loop.
type Controller struct {
	store    RecordStore
	now      func() time.Time
	analyzer journal.Analyzer
	notifier notify.Notifier
	log      *zap.Logger
	quotes   []string

	view             View
	history          *journal.History
	selectedMood     int
	note             string
	selectedExercise *journal.Exercise
	quote            int

	observers map[int]func(ViewModel)
	nextObs   int
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithAnalyzer(a journal.Analyzer) Option {
	return func(c *Controller) { c.analyzer = a }
}

func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func WithQuotes(q []string) Option {
	return func(c *Controller) {
		if len(q) > 0 {
			c.quotes = q
		}
	}
}

func New(store RecordStore, opts ...Option) *Controller {
	c := &Controller{
		store:        store,
		now:          time.Now,
		analyzer:     journal.DefaultAnalyzer(),
		log:          zap.NewNop(),
		quotes:       journal.Quotes,
		view:         ViewDashboard,
		history:      journal.NewHistory(nil),
		selectedMood: journal.DefaultMood,
		observers:    map[int]func(ViewModel){},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load hydrates the history from the store. Corrupt stored data is logged
// and leaves an empty history. Any other failure, including encrypted data
// that cannot be opened, is returned so nothing is saved over it.
func (c *Controller) Load() error {
	records, err := c.store.Load()
	switch {
	case errors.Is(err, db.ErrCorruptRecords):
		c.log.Warn("starting with empty history", zap.Error(err))
		records = nil
	case err != nil:
		return fmt.Errorf("load records: %w", err)
	}
	c.history.Replace(records)
	c.log.Info("history loaded", zap.Int("records", c.history.Len()))
	c.changed()
	return nil
}

func (c *Controller) SetView(v View) error {
	if _, err := ParseView(string(v)); err != nil {
		return err
	}
	c.view = v
	c.changed()
	return nil
}

func (c *Controller) SetSelectedMood(m int) error {
	if !journal.ValidMood(m) {
		return fmt.Errorf("%w: got %d", ErrInvalidMood, m)
	}
	c.selectedMood = m
	c.changed()
	return nil
}

func (c *Controller) SetNote(note string) {
	c.note = note
	c.changed()
}

func (c *Controller) SetSelectedExercise(id string) error {
	ex, ok := journal.ExerciseByID(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExercise, id)
	}
	c.selectedExercise = &ex
	c.changed()
	return nil
}

func (c *Controller) ClearSelectedExercise() {
	c.selectedExercise = nil
	c.changed()
}

// HandleCheckIn saves today's check-in from the draft, replacing any earlier
// one for today. If persisting fails the in-memory history is unchanged.
func (c *Controller) HandleCheckIn() (journal.MoodRecord, error) {
	if !journal.ValidMood(c.selectedMood) {
		return journal.MoodRecord{}, fmt.Errorf("%w: got %d", ErrInvalidMood, c.selectedMood)
	}
	rec := journal.MoodRecord{
		Date: journal.DateOf(c.now()),
		Mood: c.selectedMood,
		Note: c.note,
	}
	if c.note != "" {
		rec.Sentiment = c.analyzer.Analyze(c.note)
	}

	if err := c.store.Save(c.history.With(rec)); err != nil {
		c.log.Error("check-in not saved", zap.String("date", rec.Date), zap.Error(err))
		return journal.MoodRecord{}, fmt.Errorf("save check-in: %w", err)
	}
	c.history.Upsert(rec)
	c.note = ""
	c.view = ViewDashboard
	c.log.Info("check-in saved",
		zap.String("date", rec.Date), zap.Int("mood", rec.Mood), zap.String("sentiment", string(rec.Sentiment)))

	if c.notifier != nil {
		title, msg := notify.FormatCheckInSaved()
		if err := c.notifier.Notify(title, msg); err != nil {
			c.log.Warn("notification failed", zap.Error(err))
		}
	}
	c.changed()
	return rec, nil
}

// NextQuote advances the quote index, wrapping around.
func (c *Controller) NextQuote() {
	c.quote = (c.quote + 1) % len(c.quotes)
	c.changed()
}

// CheckedInToday reports whether a record exists for the current day.
func (c *Controller) CheckedInToday() bool {
	_, ok := c.history.On(journal.DateOf(c.now()))
	return ok
}

func (c *Controller) Snapshot() ViewModel {
	now := c.now()
	records := c.history.List()
	sum := journal.Summarize(records, now)

	vm := ViewModel{
		View:         c.view,
		Records:      records,
		SelectedMood: c.selectedMood,
		Note:         c.note,
		QuoteIndex:   c.quote,
		Quote:        c.quotes[c.quote],

		Streak:    sum.Streak,
		AvgMood:   sum.Average,
		HasAvg:    sum.HasAvg,
		Count:     sum.Count,
		ChartData: journal.ChartSeries(records, journal.TrendPoints, now.Location()),
		Sparkline: journal.ChartSeries(records, journal.SparklinePoints, now.Location()),
		Badge:     sum.Badge,
		Today:     sum.Today,
		BestDay:   sum.BestDay,
		Trend:     sum.Trend,
	}
	if c.selectedExercise != nil {
		ex := *c.selectedExercise
		ex.Instructions = append([]string(nil), ex.Instructions...)
		vm.SelectedExercise = &ex
	}
	return vm
}

// Subscribe registers fn to be called with a fresh snapshot after every
// mutation. The returned func removes it.
func (c *Controller) Subscribe(fn func(ViewModel)) (cancel func()) {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller) changed() {
	if len(c.observers) == 0 {
		return
	}
	vm := c.Snapshot()
	for _, fn := range c.observers {
		fn(vm)
	}
}
