package db

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/wellness/internal/encryption"
	"github.com/ramanasai/wellness/internal/journal"
)

type mapKV struct {
	m      map[string]string
	setErr error
}

func newMapKV() *mapKV { return &mapKV{m: map[string]string{}} }

func (k *mapKV) Get(key string) (string, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *mapKV) Set(key, value string) error {
	if k.setErr != nil {
		return k.setErr
	}
	k.m[key] = value
	return nil
}

func sampleRecords() []journal.MoodRecord {
	return []journal.MoodRecord{
		{Date: "2026-10-19", Mood: 4, Note: "great day", Sentiment: journal.SentimentPositive},
		{Date: "2026-10-17", Mood: 2, Note: ""},
		{Date: "2026-10-18", Mood: 3, Note: "cloudy", Sentiment: journal.SentimentNeutral},
	}
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	g := NewRecordGateway(newMapKV())
	records, err := g.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := NewRecordGateway(openTestStore(t))
	require.NoError(t, g.Save(sampleRecords()))

	got, err := g.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, sampleRecords(), got)
}

func TestSaveWritesJSONArrayUnderKey(t *testing.T) {
	kv := newMapKV()
	g := NewRecordGateway(kv, WithKey("custom"))
	require.NoError(t, g.Save(sampleRecords()))

	raw := kv.m["custom"]
	assert.True(t, strings.HasPrefix(raw, `[{"date":"2026-10-17","mood":2,"note":""}`), raw)
	assert.Contains(t, raw, `"sentiment":"positive"`)
	_, ok := kv.m[DefaultRecordsKey]
	assert.False(t, ok)
}

func TestSaveOverwrites(t *testing.T) {
	kv := newMapKV()
	g := NewRecordGateway(kv)
	require.NoError(t, g.Save(sampleRecords()))
	require.NoError(t, g.Save([]journal.MoodRecord{{Date: "2026-10-20", Mood: 5}}))

	got, err := g.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-10-20", got[0].Date)
}

func TestLoadCorruptPayload(t *testing.T) {
	kv := newMapKV()
	kv.m[DefaultRecordsKey] = `[{"date": "2026-10-19", "mood": 4`
	g := NewRecordGateway(kv)

	records, err := g.Load()
	assert.True(t, errors.Is(err, ErrCorruptRecords))
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, `[{"date": "2026-10-19", "mood": 4`, kv.m[DefaultRecordsKey+".corrupt"])
}

func TestLoadDropsInvalidAndDuplicateRecords(t *testing.T) {
	kv := newMapKV()
	kv.m[DefaultRecordsKey] = `[
		{"date":"2026-10-18","mood":3,"note":""},
		{"date":"2026-10-19","mood":9,"note":"too high"},
		{"date":"yesterday","mood":2,"note":""},
		{"date":"2026-10-18","mood":5,"note":"later"}
	]`
	got, err := NewRecordGateway(kv).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Mood)
	assert.Equal(t, "later", got[0].Note)
}

func TestSavePropagatesStorageError(t *testing.T) {
	kv := newMapKV()
	kv.setErr = errors.New("disk full")
	err := NewRecordGateway(kv).Save(sampleRecords())
	assert.ErrorContains(t, err, "disk full")
}

func TestSealedRoundTrip(t *testing.T) {
	enc, err := encryption.NewEncryptor("pw", filepath.Join(t.TempDir(), "salt"))
	require.NoError(t, err)

	kv := newMapKV()
	g := NewRecordGateway(kv, WithSealer(enc))
	require.NoError(t, g.Save(sampleRecords()))
	assert.True(t, strings.HasPrefix(kv.m[DefaultRecordsKey], sealedPrefix))
	assert.NotContains(t, kv.m[DefaultRecordsKey], "great day")

	got, err := g.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, sampleRecords(), got)
}

func TestSealedPayloadWithoutPassphraseIsRefused(t *testing.T) {
	enc, err := encryption.NewEncryptor("pw", filepath.Join(t.TempDir(), "salt"))
	require.NoError(t, err)
	kv := newMapKV()
	require.NoError(t, NewRecordGateway(kv, WithSealer(enc)).Save(sampleRecords()))
	sealed := kv.m[DefaultRecordsKey]

	records, err := NewRecordGateway(kv).Load()
	assert.ErrorIs(t, err, ErrSealedRecords)
	assert.NotErrorIs(t, err, ErrCorruptRecords)
	assert.Nil(t, records)
	assert.Equal(t, sealed, kv.m[DefaultRecordsKey])
	assert.NotContains(t, kv.m, DefaultRecordsKey+".corrupt")
}

func TestWrongPassphraseLeavesHistoryIntact(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	right, err := encryption.NewEncryptor("correct horse", salt)
	require.NoError(t, err)
	wrong, err := encryption.NewEncryptor("correct hose", salt)
	require.NoError(t, err)

	kv := newMapKV()
	require.NoError(t, NewRecordGateway(kv, WithSealer(right)).Save(sampleRecords()))
	sealed := kv.m[DefaultRecordsKey]

	// a typo in the passphrase must not look like an empty journal
	records, err := NewRecordGateway(kv, WithSealer(wrong)).Load()
	require.ErrorIs(t, err, ErrSealedRecords)
	assert.NotErrorIs(t, err, ErrCorruptRecords)
	assert.Nil(t, records)
	assert.Equal(t, sealed, kv.m[DefaultRecordsKey])
	assert.Len(t, kv.m, 1)

	got, err := NewRecordGateway(kv, WithSealer(right)).Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, sampleRecords(), got)
}

func TestQuarantineKeepsEarlierBackup(t *testing.T) {
	kv := newMapKV()
	g := NewRecordGateway(kv)
	g.now = func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC) }

	kv.m[DefaultRecordsKey] = `{first`
	_, err := g.Load()
	require.ErrorIs(t, err, ErrCorruptRecords)

	// loading the same bad payload again does not add copies
	_, err = g.Load()
	require.ErrorIs(t, err, ErrCorruptRecords)
	assert.Len(t, kv.m, 2)

	kv.m[DefaultRecordsKey] = `{second`
	_, err = g.Load()
	require.ErrorIs(t, err, ErrCorruptRecords)

	assert.Equal(t, `{first`, kv.m[DefaultRecordsKey+".corrupt"])
	assert.Equal(t, `{second`, kv.m[DefaultRecordsKey+".corrupt.20261019T080000.000000000"])
}

func TestPlainPayloadLoadsWithSealer(t *testing.T) {
	enc, err := encryption.NewEncryptor("pw", filepath.Join(t.TempDir(), "salt"))
	require.NoError(t, err)
	kv := newMapKV()
	require.NoError(t, NewRecordGateway(kv).Save(sampleRecords()))

	got, err := NewRecordGateway(kv, WithSealer(enc)).Load()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
