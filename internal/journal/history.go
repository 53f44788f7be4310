package journal

// History is the in-memory record collection. It holds at most one record
// per date.
type History struct {
	records []MoodRecord
}

// NewHistory builds a history from stored records; when dates repeat the
// later record wins.
func NewHistory(records []MoodRecord) *History {
	h := &History{}
	for _, r := range records {
		h.Upsert(r)
	}
	return h
}

// Upsert replaces any record with the same date and appends r.
func (h *History) Upsert(r MoodRecord) {
	out := h.records[:0:0]
	for _, existing := range h.records {
		if existing.Date != r.Date {
			out = append(out, existing)
		}
	}
	h.records = append(out, r)
}

// With returns the collection that Upsert(r) would produce without
// modifying h.
func (h *History) With(r MoodRecord) []MoodRecord {
	out := make([]MoodRecord, 0, len(h.records)+1)
	for _, existing := range h.records {
		if existing.Date != r.Date {
			out = append(out, existing)
		}
	}
	return append(out, r)
}

// List returns a copy sorted by date.
func (h *History) List() []MoodRecord { return SortedByDate(h.records) }

func (h *History) Len() int { return len(h.records) }

func (h *History) On(date string) (MoodRecord, bool) {
	for _, r := range h.records {
		if r.Date == date {
			return r, true
		}
	}
	return MoodRecord{}, false
}

// Replace swaps the whole collection.
func (h *History) Replace(records []MoodRecord) {
	*h = *NewHistory(records)
}
