package errors

import (
	"errors"

	"github.com/louisbranch/charnorm/internal/platform/errors/i18n"
)

// Localize renders the user-facing message for err and reports the catalog
// locale that produced it. Errors that are not domain errors fall back to
// their Error() text.
func Localize(err error, locale string) (string, string) {
	catalog := i18n.GetCatalog(locale)
	if err == nil {
		return catalog.Locale(), ""
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return catalog.Locale(), err.Error()
	}
	return catalog.Locale(), catalog.Format(string(appErr.Code), appErr.Metadata)
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata extracts metadata from an error if present.
func GetMetadata(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Metadata
	}
	return nil
}
