package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	title, msg := FormatCheckInSaved()
	assert.NoError(t, Writer{W: &buf}.Notify(title, msg))
	assert.Equal(t, "Check-in saved! Your mood has been recorded. Keep up the great work!\n", buf.String())
}

func TestFanoutDeliversToAll(t *testing.T) {
	var got []string
	boom := errors.New("boom")
	f := Fanout{
		Func(func(title, _ string) error { got = append(got, "a:"+title); return boom }),
		Func(func(title, _ string) error { got = append(got, "b:"+title); return nil }),
	}
	err := f.Notify("hi", "there")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a:hi", "b:hi"}, got)
}

func TestFormatDailyPrompt(t *testing.T) {
	_, msg := FormatDailyPrompt(0)
	assert.Contains(t, msg, "check in")
	_, msg = FormatDailyPrompt(4)
	assert.Contains(t, msg, "4 day streak")
}
