package name

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/charnorm/internal/platform/errors"
)

var reasonCodes = map[Reason]apperrors.Code{
	ReasonEmpty:                apperrors.CodeCharacterNameEmpty,
	ReasonWhitespaceOnly:       apperrors.CodeCharacterNameWhitespaceOnly,
	ReasonTooShort:             apperrors.CodeCharacterNameTooShort,
	ReasonTooLong:              apperrors.CodeCharacterNameTooLong,
	ReasonInvalidCharset:       apperrors.CodeCharacterNameInvalidCharset,
	ReasonLeadingTrailingSpace: apperrors.CodeCharacterNameLeadingTrailingSpace,
	ReasonNoLetter:             apperrors.CodeCharacterNameNoLetter,
}

// Code returns the domain error code for a failed reason, or CodeUnknown for
// ReasonNone and unrecognized reasons.
func (r Reason) Code() apperrors.Code {
	if code, ok := reasonCodes[r]; ok {
		return code
	}
	return apperrors.CodeUnknown
}

// Check validates name and returns a domain error carrying the failure
// reason, or nil when the name is valid.
func Check(name string) error {
	valid, reason := Validate(name)
	if valid {
		return nil
	}
	return reasonError(reason)
}

func reasonError(reason Reason) error {
	return apperrors.WithMetadata(reason.Code(), fmt.Sprintf("character name invalid: %s", reason), map[string]string{
		"Reason": string(reason),
		"Min":    strconv.Itoa(MinLength),
		"Max":    strconv.Itoa(MaxLength),
	})
}

// Outcome is the full answer to a name review: the verdict, a localized
// message, and replacement candidates when the name is invalid.
type Outcome struct {
	Name        string
	Valid       bool
	Reason      Reason
	Code        apperrors.Code
	Locale      string
	Message     string
	Sanitized   string
	Suggestions []string
}

// Review validates name and, when it is invalid, localizes the failure for
// locale and attaches suggestions.
func Review(name string, locale string) Outcome {
	out := Outcome{Name: name, Sanitized: Sanitize(name)}
	out.Valid, out.Reason = Validate(name)
	if out.Valid {
		return out
	}

	err := reasonError(out.Reason)
	out.Code = apperrors.GetCode(err)
	out.Locale, out.Message = apperrors.Localize(err, locale)
	out.Suggestions = Suggest(name)
	return out
}
