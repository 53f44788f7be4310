package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/wellness/internal/utils"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "data_dir: " + filepath.Join(dir, "data") + "\ntimezone: UTC\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckinStatsHistory(t *testing.T) {
	path := writeConfig(t)
	today := time.Now().UTC().Format("2006-01-02")

	out, err := run(t, path, "checkin", "-m", "2", "feeling", "sad")
	require.NoError(t, err)
	assert.Contains(t, out, "Check-in saved!")
	assert.Contains(t, out, today)
	assert.Contains(t, out, "(negative)")

	// same day again replaces the record
	out, err = run(t, path, "checkin", "--mood", "5", "great", "evening")
	require.NoError(t, err)
	assert.Contains(t, out, "Streak: 1 days")

	out, err = run(t, path, "stats", "--format", "json")
	require.NoError(t, err)
	var stats utils.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 1, stats.Count)
	require.NotNil(t, stats.Today)
	assert.Equal(t, 5, stats.Today.Mood)

	out, err = run(t, path, "history", "--format", "csv", "--since", "today")
	require.NoError(t, err)
	assert.Equal(t, "date,mood,note,sentiment\n"+today+",5,great evening,positive\n", out)

	_, err = run(t, path, "stats", "--format", "default")
	require.NoError(t, err)
}

func TestCheckinRejectsBadMood(t *testing.T) {
	path := writeConfig(t)
	_, err := run(t, path, "checkin", "--mood", "9")
	assert.ErrorContains(t, err, "mood must be between 1 and 5")
}

func TestExercisesCommand(t *testing.T) {
	path := writeConfig(t)
	out, err := run(t, path, "exercises")
	require.NoError(t, err)
	assert.Contains(t, out, "desk-stretch")
	assert.Contains(t, out, "breathing")

	out, err = run(t, path, "exercises", "--style", "notty", "meditation")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = run(t, path, "exercises", "juggling")
	assert.ErrorContains(t, err, "unknown exercise")
}

func TestTrendsRejectsBadDays(t *testing.T) {
	path := writeConfig(t)
	_, err := run(t, path, "trends", "--days", "0")
	assert.Error(t, err)

	out, err := run(t, path, "trends", "--days", "30", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestConfigCommand(t *testing.T) {
	// --init against a missing file falls back to the default data dir
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t)
	out, err := run(t, path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "timezone: UTC")
	assert.Contains(t, out, "key: wellness-records")

	fresh := filepath.Join(t.TempDir(), "config.yaml")
	out, err = run(t, fresh, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+fresh)
	_, err = os.Stat(fresh)
	assert.NoError(t, err)

	_, err = run(t, fresh, "config", "--init")
	assert.ErrorContains(t, err, "already exists")
	configInit = false
}

func TestWrongPassphraseRefusesToTouchJournal(t *testing.T) {
	path := writeConfig(t)

	t.Setenv("WELLNESS_ENCRYPTION_PASSPHRASE", "right")
	_, err := run(t, path, "checkin", "--mood", "4", "good", "day")
	require.NoError(t, err)

	t.Setenv("WELLNESS_ENCRYPTION_PASSPHRASE", "wrong")
	_, err = run(t, path, "checkin", "--mood", "1")
	assert.ErrorContains(t, err, "cannot be opened")
	_, err = run(t, path, "stats", "--format", "json")
	assert.ErrorContains(t, err, "cannot be opened")

	t.Setenv("WELLNESS_ENCRYPTION_PASSPHRASE", "right")
	out, err := run(t, path, "stats", "--format", "json")
	require.NoError(t, err)
	var stats utils.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.NotNil(t, stats.Today)
	assert.Equal(t, 4, stats.Today.Mood)
	assert.Equal(t, "good day", stats.Today.Note)
}
