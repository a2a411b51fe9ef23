package renderer

import (
	"strings"
	"time"
)

const (
	shortDateLayout = "Jan 2006"
	fullDateLayout  = "January 2, 2006"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
	"January 2, 2006",
	"Jan 2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDate renders s with layout. Empty input yields an empty string and
// unparseable input is echoed unchanged.
func formatDate(s, layout string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format(layout)
}

func formatShortDate(s string) string { return formatDate(s, shortDateLayout) }

func formatFullDate(s string) string { return formatDate(s, fullDateLayout) }

// descriptionLines splits free text into trimmed, non-blank lines.
func descriptionLines(desc string) []string {
	if strings.TrimSpace(desc) == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitSkills splits on commas and trims every token. Empty tokens from
// doubled or trailing commas are kept.
func splitSkills(skills string) []string {
	tokens := strings.Split(skills, ",")
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
	}
	return tokens
}
