package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/wellness/internal/journal"
)

var (
	relativeRe  = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks|m|month|months|y|year|years)(\s+ago)?$`)
	dateLayouts = []string{
		journal.DateLayout,
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		time.RFC3339,
	}
)

// ParseFlexibleDate resolves a calendar day relative to now: "today",
// "yesterday", "7d", "2 weeks ago", "last month", "this week" or an explicit
// date. The result is midnight in now's location.
func ParseFlexibleDate(input string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(input)
	input = strings.ToLower(raw)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}
	loc := now.Location()
	today := journal.StartOfDay(now)

	switch input {
	case "today", "now":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "last week":
		return today.AddDate(0, 0, -7), nil
	case "last month":
		return today.AddDate(0, -1, 0), nil
	case "last year":
		return today.AddDate(-1, 0, 0), nil
	case "this week":
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return today.AddDate(0, 0, -(weekday - 1)), nil
	case "this month":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc), nil
	case "this year":
		return time.Date(today.Year(), 1, 1, 0, 0, 0, 0, loc), nil
	}

	if m := relativeRe.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2][0] {
		case 'd':
			return today.AddDate(0, 0, -n), nil
		case 'w':
			return today.AddDate(0, 0, -7*n), nil
		case 'm':
			return today.AddDate(0, -n, 0), nil
		case 'y':
			return today.AddDate(-n, 0, 0), nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return journal.StartOfDay(t.In(loc)), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// GetDateRange returns [start, end) for a named preset.
func GetDateRange(preset string, now time.Time) (time.Time, time.Time, error) {
	loc := now.Location()
	today := journal.StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "today":
		return today, tomorrow, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), today, nil
	case "week":
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := today.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 7), nil
	case "month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	case "year":
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), nil
	case "last7days", "last-7-days":
		return today.AddDate(0, 0, -6), tomorrow, nil
	case "last30days", "last-30-days":
		return today.AddDate(0, 0, -29), tomorrow, nil
	case "last90days", "last-90-days":
		return today.AddDate(0, 0, -89), tomorrow, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown date preset: %s", preset)
}

// FilterRange keeps records whose date falls in [start, end). A zero end
// means no upper bound.
func FilterRange(records []journal.MoodRecord, start, end time.Time) []journal.MoodRecord {
	out := make([]journal.MoodRecord, 0, len(records))
	for _, r := range records {
		d, err := r.Day(start.Location())
		if err != nil {
			continue
		}
		if d.Before(start) || (!end.IsZero() && !d.Before(end)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
