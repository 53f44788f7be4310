package journal

import (
	"fmt"
	"math"
	"time"
)

// TrendWindow is the number of most recent records compared against the
// window before them.
const TrendWindow = 7

// Chart sizes used by the dashboard sparkline and the trends view.
const (
	SparklinePoints = 7
	TrendPoints     = 30
)

// AverageMood returns the mean mood rounded to one decimal. ok is false for
// an empty history.
func AverageMood(records []MoodRecord) (avg float64, ok bool) {
	if len(records) == 0 {
		return 0, false
	}
	return round1(meanMood(records)), true
}

// FormatAverage renders an AverageMood result for display.
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", avg)
}

type ChartPoint struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Mood  int    `json:"mood"`
}

// ChartSeries sorts by date and projects the last n records to chart points
// labelled like "Jan 2".
func ChartSeries(records []MoodRecord, n int, loc *time.Location) []ChartPoint {
	sorted := SortedByDate(records)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	points := make([]ChartPoint, 0, len(sorted))
	for _, r := range sorted {
		label := r.Date
		if d, err := r.Day(loc); err == nil {
			label = d.Format("Jan 2")
		}
		points = append(points, ChartPoint{Date: r.Date, Label: label, Mood: r.Mood})
	}
	return points
}

// BestDay returns the record with the highest mood. Ties go to the earliest
// date.
func BestDay(records []MoodRecord) (MoodRecord, bool) {
	if len(records) == 0 {
		return MoodRecord{}, false
	}
	sorted := SortedByDate(records)
	best := sorted[0]
	for _, r := range sorted[1:] {
		if r.Mood > best.Mood {
			best = r
		}
	}
	return best, true
}

type Trend int

const (
	TrendUnavailable Trend = iota
	TrendImproving
	TrendSteady
)

func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "improving"
	case TrendSteady:
		return "steady"
	default:
		return "unavailable"
	}
}

// Message is the insight text shown for the trend.
func (t Trend) Message() string {
	switch t {
	case TrendImproving:
		return "↗ Trending up"
	case TrendSteady:
		return "Keep going!"
	default:
		return ""
	}
}

// TrendDirection compares the mean of the last TrendWindow records with the
// mean of the up to TrendWindow records preceding them. It needs more than
// TrendWindow records.
func TrendDirection(records []MoodRecord) Trend {
	if len(records) <= TrendWindow {
		return TrendUnavailable
	}
	sorted := SortedByDate(records)
	n := len(sorted)
	recent := sorted[n-TrendWindow:]
	start := n - 2*TrendWindow
	if start < 0 {
		start = 0
	}
	previous := sorted[start : n-TrendWindow]
	if meanMood(recent) > meanMood(previous) {
		return TrendImproving
	}
	return TrendSteady
}

// Summary bundles the derived values renderers need.
type Summary struct {
	Streak   int
	Average  float64
	HasAvg   bool
	Count    int
	Badge    *Badge
	BestDay  *MoodRecord
	Trend    Trend
	Today    *MoodRecord
	TodayKey string
}

func Summarize(records []MoodRecord, now time.Time) Summary {
	s := Summary{
		Streak:   Streak(records, now),
		Count:    len(records),
		Trend:    TrendDirection(records),
		TodayKey: DateOf(now),
	}
	s.Average, s.HasAvg = AverageMood(records)
	if b, ok := BadgeFor(s.Streak); ok {
		s.Badge = &b
	}
	if best, ok := BestDay(records); ok {
		s.BestDay = &best
	}
	for _, r := range records {
		if r.Date == s.TodayKey {
			r := r
			s.Today = &r
			break
		}
	}
	return s
}

func meanMood(records []MoodRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Mood
	}
	return float64(sum) / float64(len(records))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
