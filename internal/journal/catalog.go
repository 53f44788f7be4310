package journal

type Mood struct {
	Value int
	Label string
	Glyph string
}

var Moods = []Mood{
	{Value: 1, Label: "Very Sad", Glyph: "😢"},
	{Value: 2, Label: "Sad", Glyph: "🙁"},
	{Value: 3, Label: "Neutral", Glyph: "😌"},
	{Value: 4, Label: "Happy", Glyph: "🙂"},
	{Value: 5, Label: "Very Happy", Glyph: "😄"},
}

// MoodFor looks up the scale entry for value.
func MoodFor(value int) (Mood, bool) {
	for _, m := range Moods {
		if m.Value == value {
			return m, true
		}
	}
	return Mood{}, false
}

type Category string

const (
	CategoryBreathing   Category = "breathing"
	CategoryMovement    Category = "movement"
	CategoryMindfulness Category = "mindfulness"
	CategoryStretching  Category = "stretching"
)

// Exercise is read-only reference data; Instructions are shown in order.
type Exercise struct {
	ID           string
	Title        string
	Description  string
	Duration     string
	Category     Category
	Instructions []string
}

var Exercises = []Exercise{
	{
		ID:          "desk-stretch",
		Title:       "Desk Stretches",
		Description: "Quick stretches to relieve study tension",
		Duration:    "5 minutes",
		Category:    CategoryStretching,
		Instructions: []string{
			"Sit up straight in your chair",
			"Roll your shoulders backwards 10 times",
			"Gently turn your head left and right",
			"Stretch your arms overhead and hold for 15 seconds",
			"Do neck rolls slowly and carefully",
		},
	},
	{
		ID:          "meditation",
		Title:       "Mindful Meditation",
		Description: "Calm your mind and reduce stress",
		Duration:    "10 minutes",
		Category:    CategoryMindfulness,
		Instructions: []string{
			"Find a quiet, comfortable place to sit",
			"Close your eyes and take deep breaths",
			"Focus on your breathing rhythm",
			"Notice thoughts without judgment",
			"Continue for 10 minutes, start with 3-5 if new to meditation",
		},
	},
	{
		ID:          "breathing",
		Title:       "Box Breathing",
		Description: "Structured breathing for anxiety relief",
		Duration:    "3 minutes",
		Category:    CategoryBreathing,
		Instructions: []string{
			"Inhale slowly for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale slowly for 4 counts",
			"Hold empty lungs for 4 counts",
			"Repeat this cycle 8-10 times",
		},
	},
	{
		ID:          "yoga",
		Title:       "Study Break Yoga",
		Description: "Gentle yoga poses for students",
		Duration:    "8 minutes",
		Category:    CategoryMovement,
		Instructions: []string{
			"Start in child's pose for 30 seconds",
			"Move to downward dog and hold for 1 minute",
			"Step forward into forward fold",
			"Rise slowly to mountain pose",
			"Repeat sequence 3 times mindfully",
		},
	},
}

// ExerciseByID returns a copy of the catalog entry so callers cannot
// mutate the shared instructions slice.
func ExerciseByID(id string) (Exercise, bool) {
	for _, ex := range Exercises {
		if ex.ID == id {
			ex.Instructions = append([]string(nil), ex.Instructions...)
			return ex, true
		}
	}
	return Exercise{}, false
}

var Quotes = []string{
	"Every small step towards wellness counts.",
	"Your mental health is a priority, not a luxury.",
	"Progress, not perfection, is the goal.",
	"You are capable of amazing things.",
	"Take care of your mind, it's your greatest asset.",
	"Healing is not linear, be patient with yourself.",
	"Your feelings are valid and temporary.",
	"Growth happens outside your comfort zone.",
}
