package journal

import (
	"sort"
	"time"
)

// Streak counts consecutive calendar days ending today (in now's location)
// that have a record. Records with unparsable or future dates are skipped.
func Streak(records []MoodRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}
	loc := now.Location()
	today := StartOfDay(now)

	days := make([]time.Time, 0, len(records))
	for _, r := range records {
		d, err := r.Day(loc)
		if err != nil || d.After(today) {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	for _, d := range days {
		if daysBetween(d, today) != streak {
			break
		}
		streak++
	}
	return streak
}

// daysBetween returns whole calendar days from a to b, independent of DST
// shifts inside the interval.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
