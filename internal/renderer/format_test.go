package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDates(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		short string
		full  string
	}{
		{"iso date", "2018-09-01", "Sep 2018", "September 1, 2018"},
		{"month only", "2022-06", "Jun 2022", "June 1, 2022"},
		{"rfc3339", "2021-01-15T08:00:00Z", "Jan 2021", "January 15, 2021"},
		{"empty", "", "", ""},
		{"unparseable echoed", "sometime", "sometime", "sometime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.short, formatShortDate(tt.in))
			assert.Equal(t, tt.full, formatFullDate(tt.in))
		})
	}
}

func TestDescriptionLines(t *testing.T) {
	assert.Nil(t, descriptionLines(""))
	assert.Nil(t, descriptionLines("  \n "))
	assert.Equal(t, []string{"a", "b"}, descriptionLines(" a \r\n\n b"))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "Go", "Rust"}, splitSkills("Python, Go, Rust"))
	assert.Equal(t, []string{"Go", "", "Rust", ""}, splitSkills("Go,,Rust,"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jane-doe-o-brien", Slug("Jane", "Doe O'Brien"))
	assert.Equal(t, "ren--m-ller", Slug("René", "Müller"))
	assert.Equal(t, "a1-b2", Slug("A1", "B2"))
}

func TestFileName(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "resume-jane-doe-o-brien-1700000000123.docx", FileName("Jane", "Doe O'Brien", at))
}

func TestResolveStyle(t *testing.T) {
	assert.Equal(t, "Calibri", ResolveStyle("modern").Fonts.Heading)
	assert.Equal(t, "Times New Roman", ResolveStyle("professional").Fonts.Heading)
	assert.Equal(t, "Verdana", ResolveStyle("creative").Fonts.Heading)
	assert.Equal(t, "Georgia", ResolveStyle("executive").Fonts.Heading)
	assert.Equal(t, ResolveStyle("modern"), ResolveStyle("unknown"))
}
