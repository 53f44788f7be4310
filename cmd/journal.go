package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/app"
	"github.com/ramanasai/wellness/internal/db"
	"github.com/ramanasai/wellness/internal/encryption"
	"github.com/ramanasai/wellness/internal/journal"
	"github.com/ramanasai/wellness/internal/notify"
)

// openJournal opens the store and the record gateway described by cfg. The
// caller closes the store.
func openJournal() (*db.Store, *db.RecordGateway, error) {
	store, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	opts := []db.GatewayOption{db.WithKey(cfg.Storage.Key), db.WithLogger(logger)}
	if cfg.Encryption.Passphrase != "" {
		enc, err := encryption.NewEncryptor(cfg.Encryption.Passphrase, cfg.SaltPath())
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("init encryption: %w", err)
		}
		opts = append(opts, db.WithSealer(enc))
	}
	return store, db.NewRecordGateway(store, opts...), nil
}

func newController(gw app.RecordStore, n notify.Notifier) *app.Controller {
	opts := []app.Option{
		app.WithAnalyzer(journal.NewAnalyzer(cfg.Sentiment.Positive, cfg.Sentiment.Negative)),
		app.WithLogger(logger),
		app.WithClock(func() time.Time { return time.Now().In(cfg.Location()) }),
	}
	if n != nil {
		opts = append(opts, app.WithNotifier(n))
	}
	return app.New(gw, opts...)
}

// loadRecords reads the journal for the read-only commands.
func loadRecords() ([]journal.MoodRecord, error) {
	store, gw, err := openJournal()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	records, err := gw.Load()
	if err != nil {
		logger.Warn("reading journal", zap.Error(err))
		if records == nil {
			return nil, err
		}
	}
	return records, nil
}
