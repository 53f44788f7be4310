// Package journal holds the wellness domain: mood records, the static
// exercise/quote catalog and the pure functions deriving streaks, averages
// and trends from a record history.
package journal

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar-day form used for MoodRecord.Date.
const DateLayout = "2006-01-02"

// Mood bounds of the ordinal scale.
const (
	MinMood     = 1
	MaxMood     = 5
	DefaultMood = 3
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// MoodRecord is one daily check-in. Sentiment is empty when the note was
// empty at save time.
type MoodRecord struct {
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

// Day parses the record date as midnight in loc.
func (r MoodRecord) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, r.Date, loc)
}

// Validate reports whether the record can be stored.
func (r MoodRecord) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	if !ValidMood(r.Mood) {
		return fmt.Errorf("mood %d out of range %d..%d", r.Mood, MinMood, MaxMood)
	}
	return nil
}

func ValidMood(m int) bool { return m >= MinMood && m <= MaxMood }

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) string { return t.Format(DateLayout) }

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SortedByDate returns a copy of records in ascending date order.
func SortedByDate(records []MoodRecord) []MoodRecord {
	out := make([]MoodRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
