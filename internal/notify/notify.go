package notify

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
)

const appName = "Wellness"

type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the OS notification center.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Writer prints notifications, for the one-shot CLI commands.
type Writer struct{ W io.Writer }

func (w Writer) Notify(title, message string) error {
	_, err := fmt.Fprintf(w.W, "%s %s\n", title, message)
	return err
}

// Func adapts a plain function, e.g. a TUI toast.
type Func func(title, message string) error

func (f Func) Notify(title, message string) error { return f(title, message) }

// Fanout delivers to every notifier and returns the first error.
type Fanout []Notifier

func (f Fanout) Notify(title, message string) error {
	var first error
	for _, n := range f {
		if err := n.Notify(title, message); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Alert is used for the daily reminder; it also plays the system sound.
func Alert(title, message string) error {
	return beeep.Alert(title, message, "")
}

func FormatDailyPrompt(streak int) (string, string) {
	title := appName + ": daily check-in"
	if streak > 0 {
		return title, fmt.Sprintf("Keep your %d day streak going. How are you feeling today?", streak)
	}
	return title, "How are you feeling today? Take a moment to check in."
}

func FormatCheckInSaved() (string, string) {
	return "Check-in saved!", "Your mood has been recorded. Keep up the great work!"
}
