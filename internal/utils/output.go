package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ramanasai/wellness/internal/journal"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want default, table, json or csv)", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

func DefaultRenderConfig() *RenderConfig {
	width := 80
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{Format: FormatDefault, Width: width, Color: true}
}

// RecordList is one page of check-ins.
type RecordList struct {
	Records    []journal.MoodRecord `json:"records"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page,omitempty"`
	PerPage    int                  `json:"per_page,omitempty"`
	TotalPages int                  `json:"total_pages,omitempty"`
	Since      string               `json:"since,omitempty"`
}

// Stats is the serializable form of journal.Summary.
type Stats struct {
	Streak  int                 `json:"streak"`
	Average *float64            `json:"average"`
	Count   int                 `json:"count"`
	Badge   string              `json:"badge,omitempty"`
	BestDay *journal.MoodRecord `json:"best_day,omitempty"`
	Trend   string              `json:"trend"`
	Today   *journal.MoodRecord `json:"today,omitempty"`
}

func StatsFromSummary(s journal.Summary) Stats {
	out := Stats{
		Streak:  s.Streak,
		Count:   s.Count,
		BestDay: s.BestDay,
		Trend:   s.Trend.String(),
		Today:   s.Today,
	}
	if s.HasAvg {
		avg := s.Average
		out.Average = &avg
	}
	if s.Badge != nil {
		out.Badge = s.Badge.Title
	}
	return out
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Date      lipgloss.Style
	Mood      lipgloss.Style
	Text      lipgloss.Style
	Success   lipgloss.Style
}

func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func (r *Renderer) Format() OutputFormat { return r.config.Format }

func initStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:     plain.Bold(true),
			Separator: plain,
			Meta:      plain,
			Date:      plain,
			Mood:      plain.Bold(true),
			Text:      plain,
			Success:   plain,
		}
	}
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Meta:      lipgloss.NewStyle().Faint(true),
		Date:      lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
		Mood:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Text:      lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 100))) + "\n"
}

// RenderRecords renders a page of check-ins.
func (r *Renderer) RenderRecords(list *RecordList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(list)
	case FormatCSV:
		rows := make([][]string, 0, len(list.Records))
		for _, rec := range list.Records {
			rows = append(rows, []string{rec.Date, strconv.Itoa(rec.Mood), rec.Note, string(rec.Sentiment)})
		}
		return renderCSV([]string{"date", "mood", "note", "sentiment"}, rows)
	case FormatTable:
		rows := make([][]string, 0, len(list.Records))
		for _, rec := range list.Records {
			rows = append(rows, []string{rec.Date, moodLabel(rec.Mood), truncate(rec.Note, 50), string(rec.Sentiment)})
		}
		return renderTable([]string{"Date", "Mood", "Note", "Sentiment"}, rows), nil
	default:
		return r.renderRecordsDefault(list), nil
	}
}

func (r *Renderer) renderRecordsDefault(list *RecordList) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Check-ins"))
	if list.Since != "" {
		b.WriteString("  " + r.styles.Meta.Render("since "+list.Since))
	}
	b.WriteString("\n")
	b.WriteString(r.separator())

	if len(list.Records) == 0 {
		b.WriteString(r.styles.Meta.Render("No check-ins found.") + "\n")
		return b.String()
	}

	p := NewPagination(list.Total, max(list.PerPage, 1), list.Page)
	if list.TotalPages > 1 {
		b.WriteString(r.styles.Meta.Render(p.FormatSummary()) + "\n")
		b.WriteString(r.separator())
	}
	for _, rec := range list.Records {
		meta := []string{r.styles.Date.Render(rec.Date), r.styles.Mood.Render(moodLabel(rec.Mood))}
		if rec.Sentiment != "" {
			meta = append(meta, r.styles.Meta.Render(string(rec.Sentiment)))
		}
		b.WriteString(strings.Join(meta, "  ") + "\n")
		if rec.Note != "" {
			b.WriteString(r.styles.Text.Render("  "+rec.Note) + "\n")
		}
	}
	if list.TotalPages > 1 {
		if nav := p.FormatNavigation(); nav != "" {
			b.WriteString(r.separator())
			b.WriteString(r.styles.Meta.Render(nav) + "\n")
		}
	}
	return b.String()
}

// RenderSeries renders chart points; the default format draws a bar per day.
func (r *Renderer) RenderSeries(points []journal.ChartPoint) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(points)
	case FormatCSV:
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			rows = append(rows, []string{p.Date, strconv.Itoa(p.Mood)})
		}
		return renderCSV([]string{"date", "mood"}, rows)
	case FormatTable:
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			rows = append(rows, []string{p.Label, strconv.Itoa(p.Mood)})
		}
		return renderTable([]string{"Day", "Mood"}, rows), nil
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(fmt.Sprintf("Mood trend (%d check-ins)", len(points))) + "\n")
	b.WriteString(r.separator())
	if len(points) == 0 {
		b.WriteString(r.styles.Meta.Render("No check-ins yet.") + "\n")
		return b.String(), nil
	}
	for _, p := range points {
		bar := strings.Repeat("█", p.Mood*4) + strings.Repeat("░", (journal.MaxMood-p.Mood)*4)
		fmt.Fprintf(&b, "%-7s %s %d\n", p.Label, r.styles.Mood.Render(bar), p.Mood)
	}
	return b.String(), nil
}

// RenderStats renders the dashboard numbers.
func (r *Renderer) RenderStats(s Stats) (string, error) {
	if r.config.Format == FormatJSON {
		return renderJSON(s)
	}
	avg := "N/A"
	if s.Average != nil {
		avg = fmt.Sprintf("%.1f/5", *s.Average)
	}
	rows := [][]string{
		{"Current streak", fmt.Sprintf("%d days", s.Streak)},
		{"Average mood", avg},
		{"Check-ins", strconv.Itoa(s.Count)},
	}
	if s.Badge != "" {
		rows = append(rows, []string{"Badge", s.Badge})
	}
	if s.BestDay != nil {
		rows = append(rows, []string{"Best day", s.BestDay.Date + " " + moodLabel(s.BestDay.Mood)})
	}
	if s.Trend != journal.TrendUnavailable.String() {
		rows = append(rows, []string{"Trend", s.Trend})
	}
	if s.Today != nil {
		rows = append(rows, []string{"Today", moodLabel(s.Today.Mood)})
	} else {
		rows = append(rows, []string{"Today", "not checked in"})
	}

	switch r.config.Format {
	case FormatCSV:
		return renderCSV([]string{"metric", "value"}, rows)
	case FormatTable:
		return renderTable([]string{"Metric", "Value"}, rows), nil
	}
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Wellness stats") + "\n")
	b.WriteString(r.separator())
	for _, row := range rows {
		fmt.Fprintf(&b, "%-16s %s\n", row[0], r.styles.Mood.Render(row[1]))
	}
	return b.String(), nil
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func renderCSV(header []string, rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return buf.String(), nil
}

func renderTable(header []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header...).
		Rows(rows...)
	return t.String() + "\n"
}

func moodLabel(v int) string {
	if m, ok := journal.MoodFor(v); ok {
		return fmt.Sprintf("%d %s", m.Value, m.Label)
	}
	return strconv.Itoa(v)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
