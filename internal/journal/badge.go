package journal

type Badge struct {
	Threshold int
	Title     string
	Text      string
	Icon      string
}

// Badges is ordered from the highest tier down.
var Badges = []Badge{
	{Threshold: 30, Title: "Wellness Champion", Text: "Wellness Champion! 30 day streak!", Icon: "👑"},
	{Threshold: 7, Title: "Great job", Text: "Great job! 7 day streak!", Icon: "🏆"},
	{Threshold: 3, Title: "Getting consistent", Text: "Getting consistent! 3 day streak!", Icon: "🏆"},
}

// BadgeFor returns the highest tier the streak reaches.
func BadgeFor(streak int) (Badge, bool) {
	for _, b := range Badges {
		if streak >= b.Threshold {
			return b, true
		}
	}
	return Badge{}, false
}
