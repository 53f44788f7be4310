package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/wellness/internal/config"
)

// NextAt computes the next reminder time that falls on a configured workday
// and is not a holiday.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 20, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(cfg.Reminder.Time), loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}

	workdays := map[string]bool{}
	for _, d := range cfg.Reminder.Workdays {
		workdays[d] = true
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}
	eligible := func(t time.Time) bool {
		if len(workdays) > 0 && !workdays[t.Weekday().String()[:3]] {
			return false
		}
		return !holidays[t.Format("2006-01-02")]
	}

	// candidate today at hh:mm
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the most we will skip
	for i := 0; i < 366; i++ {
		if eligible(cand) {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// RunConfigured runs f at the configured reminder schedule until ctx is
// canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	t := time.NewTimer(time.Until(next))
	defer stopTimer(t)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			t.Reset(time.Until(next))
		}
	}
}

// Every calls f once per interval until ctx is canceled. It is used for the
// rotating quote; the ticker is released when ctx ends.
func Every(ctx context.Context, interval time.Duration, f func()) {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			f()
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
