package name

import (
	"regexp"
	"strings"
)

var (
	disallowedNameRunes = regexp.MustCompile(`[^a-zA-Z0-9а-яА-ЯёЁ\s\-_]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// Sanitize deletes every rune outside the name charset, collapses whitespace
// runs to a single space and trims the result. Input is taken rune by rune as
// given; combining marks are deleted like any other disallowed rune.
// Sanitize is idempotent.
func Sanitize(name string) string {
	if name == "" {
		return ""
	}
	cleaned := disallowedNameRunes.ReplaceAllString(name, "")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
