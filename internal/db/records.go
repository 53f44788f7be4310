package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ramanasai/wellness/internal/journal"
)

// DefaultRecordsKey is the storage key holding the record collection.
const DefaultRecordsKey = "wellness-records"

const sealedPrefix = "enc:v1:"

// ErrCorruptRecords is returned by Load when the stored payload cannot be
// decoded. The accompanying collection is empty and the raw payload has
// been copied to <key>.corrupt.
var ErrCorruptRecords = errors.New("stored records are corrupt")

// ErrSealedRecords is returned by Load when an encrypted payload cannot be
// opened with the configured passphrase. Nothing is backed up or cleared, so
// callers must not go on to save over it.
var ErrSealedRecords = errors.New("stored records are encrypted and cannot be opened")

// Sealer encrypts the serialized payload at rest.
type Sealer interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// RecordGateway loads and saves the whole record collection as one JSON
// array under a single key.
type RecordGateway struct {
	kv     KV
	key    string
	sealer Sealer
	log    *zap.Logger
	now    func() time.Time
}

type GatewayOption func(*RecordGateway)

func WithKey(key string) GatewayOption {
	return func(g *RecordGateway) {
		if key != "" {
			g.key = key
		}
	}
}

func WithSealer(s Sealer) GatewayOption {
	return func(g *RecordGateway) { g.sealer = s }
}

func WithLogger(l *zap.Logger) GatewayOption {
	return func(g *RecordGateway) {
		if l != nil {
			g.log = l
		}
	}
}

func NewRecordGateway(kv KV, opts ...GatewayOption) *RecordGateway {
	g := &RecordGateway{kv: kv, key: DefaultRecordsKey, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *RecordGateway) Key() string { return g.key }

// Load returns the stored collection. A missing key yields an empty
// collection. Records with an invalid date or mood are dropped; when a date
// repeats the last occurrence wins.
func (g *RecordGateway) Load() ([]journal.MoodRecord, error) {
	raw, ok, err := g.kv.Get(g.key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []journal.MoodRecord{}, nil
	}

	payload, err := g.open(raw)
	if err != nil {
		g.log.Error("cannot open sealed records", zap.String("key", g.key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSealedRecords, err)
	}
	var stored []journal.MoodRecord
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return g.quarantine(raw, err)
	}

	valid := make([]journal.MoodRecord, 0, len(stored))
	dropped := 0
	for _, r := range stored {
		if err := r.Validate(); err != nil {
			dropped++
			continue
		}
		valid = append(valid, r)
	}
	if dropped > 0 {
		g.log.Warn("dropped invalid stored records", zap.Int("dropped", dropped), zap.String("key", g.key))
	}
	return journal.NewHistory(valid).List(), nil
}

// Save overwrites the stored collection.
func (g *RecordGateway) Save(records []journal.MoodRecord) error {
	sorted := journal.SortedByDate(records)
	b, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	payload := string(b)
	if g.sealer != nil {
		sealed, err := g.sealer.Encrypt(payload)
		if err != nil {
			return fmt.Errorf("seal records: %w", err)
		}
		payload = sealedPrefix + sealed
	}
	if err := g.kv.Set(g.key, payload); err != nil {
		return err
	}
	g.log.Debug("records saved", zap.Int("count", len(sorted)))
	return nil
}

func (g *RecordGateway) open(raw string) (string, error) {
	if !strings.HasPrefix(raw, sealedPrefix) {
		return raw, nil
	}
	if g.sealer == nil {
		return "", errors.New("no passphrase is configured")
	}
	plain, err := g.sealer.Decrypt(strings.TrimPrefix(raw, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("wrong passphrase or damaged payload: %w", err)
	}
	return plain, nil
}

// quarantine copies raw to <key>.corrupt. An earlier backup holding
// different data is kept and raw goes to a timestamped key instead.
func (g *RecordGateway) quarantine(raw string, cause error) ([]journal.MoodRecord, error) {
	backup := g.key + ".corrupt"
	prev, exists, err := g.kv.Get(backup)
	if err != nil {
		g.log.Error("failed to read corrupt records backup", zap.String("key", backup), zap.Error(err))
		exists = true
	}
	switch {
	case exists && prev == raw:
		backup = ""
	case exists:
		backup = fmt.Sprintf("%s.%s", backup, g.now().UTC().Format("20060102T150405.000000000"))
	}
	if backup == "" {
		g.log.Warn("stored records unreadable, backup already present",
			zap.String("key", g.key), zap.Error(cause))
		return []journal.MoodRecord{}, fmt.Errorf("%w: %v", ErrCorruptRecords, cause)
	}
	if err := g.kv.Set(backup, raw); err != nil {
		g.log.Error("failed to back up corrupt records", zap.String("key", backup), zap.Error(err))
	}
	g.log.Warn("stored records unreadable, starting with empty history",
		zap.String("key", g.key), zap.String("backup", backup), zap.Error(cause))
	return []journal.MoodRecord{}, fmt.Errorf("%w: %v", ErrCorruptRecords, cause)
}
