package renderer

import (
	"fmt"
	"strings"
	"time"
)

// Slug lower-cases "first-last" and maps every rune outside [a-z0-9] to a
// hyphen, one hyphen per rune.
func Slug(firstName, lastName string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(firstName+"-"+lastName))
}

// FileName is the download name of a rendered résumé. The millisecond
// timestamp keeps concurrent downloads apart.
func FileName(firstName, lastName string, at time.Time) string {
	return fmt.Sprintf("resume-%s-%d.docx", Slug(firstName, lastName), at.UnixMilli())
}
