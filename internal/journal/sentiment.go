package journal

import "strings"

// Analyzer classifies note text by counting tokens that contain a positive
// or negative stem. A token matching both lists counts on both sides.
type Analyzer struct {
	Positive []string
	Negative []string
}

func DefaultAnalyzer() Analyzer {
	return Analyzer{
		Positive: []string{"happy", "good", "great", "amazing", "wonderful", "excited", "joy"},
		Negative: []string{"sad", "bad", "terrible", "awful", "depressed", "anxious", "worried"},
	}
}

// NewAnalyzer builds an analyzer from configured stems, falling back to the
// default list for any side left empty.
func NewAnalyzer(positive, negative []string) Analyzer {
	a := DefaultAnalyzer()
	if p := normalizeStems(positive); len(p) > 0 {
		a.Positive = p
	}
	if n := normalizeStems(negative); len(n) > 0 {
		a.Negative = n
	}
	return a
}

func (a Analyzer) Analyze(text string) Sentiment {
	var pos, neg int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if containsAny(word, a.Positive) {
			pos++
		}
		if containsAny(word, a.Negative) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func containsAny(word string, stems []string) bool {
	for _, s := range stems {
		if strings.Contains(word, s) {
			return true
		}
	}
	return false
}

func normalizeStems(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
