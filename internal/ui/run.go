package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/ramanasai/wellness/internal/config"
	"github.com/ramanasai/wellness/internal/schedule"
)

// Run starts the program. The quote timer and, when reminders is true, the
// daily reminder run until the program exits.
func Run(ctx context.Context, m Model, cfg config.Config, reminders bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	var eg errgroup.Group
	eg.Go(func() error {
		schedule.Every(ctx, cfg.Quotes.Interval, func() { p.Send(QuoteTickMsg{}) })
		return nil
	})
	if reminders {
		eg.Go(func() error {
			schedule.RunConfigured(ctx, cfg, func() { p.Send(ReminderMsg{}) })
			return nil
		})
	}

	_, err := p.Run()
	cancel()
	_ = eg.Wait()
	// canceled from outside, e.g. SIGTERM
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
