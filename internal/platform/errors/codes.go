// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character name errors
	CodeCharacterNameEmpty                Code = "CHARACTER_NAME_EMPTY"
	CodeCharacterNameWhitespaceOnly       Code = "CHARACTER_NAME_WHITESPACE_ONLY"
	CodeCharacterNameTooShort             Code = "CHARACTER_NAME_TOO_SHORT"
	CodeCharacterNameTooLong              Code = "CHARACTER_NAME_TOO_LONG"
	CodeCharacterNameInvalidCharset       Code = "CHARACTER_NAME_INVALID_CHARSET"
	CodeCharacterNameLeadingTrailingSpace Code = "CHARACTER_NAME_LEADING_TRAILING_SPACE"
	CodeCharacterNameNoLetter             Code = "CHARACTER_NAME_NO_LETTER"

	// Prompt errors
	CodePromptNoFields Code = "PROMPT_NO_FIELDS"
)
