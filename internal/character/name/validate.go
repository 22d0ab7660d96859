// Package name validates, sanitizes and suggests corrections for character
// display names written in Latin or Cyrillic script.
package name

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinLength is the minimum name length in runes.
	MinLength = 2
	// MaxLength is the maximum name length in runes.
	MaxLength = 50
)

// Reason explains why a name failed validation.
type Reason string

const (
	ReasonNone                 Reason = "none"
	ReasonEmpty                Reason = "empty"
	ReasonWhitespaceOnly       Reason = "whitespace_only"
	ReasonTooShort             Reason = "too_short"
	ReasonTooLong              Reason = "too_long"
	ReasonInvalidCharset       Reason = "invalid_charset"
	ReasonLeadingTrailingSpace Reason = "leading_trailing_space"
	ReasonNoLetter             Reason = "no_letter"
)

var (
	allowedNamePattern = regexp.MustCompile(`^[a-zA-Z0-9а-яА-ЯёЁ \-_]+$`)
	letterPattern      = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ]`)
)

// Validate reports whether name is an acceptable display name. Checks run in
// a fixed order and the first failing check determines the reason.
func Validate(name string) (bool, Reason) {
	if name == "" {
		return false, ReasonEmpty
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, ReasonWhitespaceOnly
	}
	length := utf8.RuneCountInString(name)
	if length < MinLength {
		return false, ReasonTooShort
	}
	if length > MaxLength {
		return false, ReasonTooLong
	}
	if !allowedNamePattern.MatchString(name) {
		return false, ReasonInvalidCharset
	}
	if name != trimmed {
		return false, ReasonLeadingTrailingSpace
	}
	if !letterPattern.MatchString(trimmed) {
		return false, ReasonNoLetter
	}
	return true, ReasonNone
}
