package name

const (
	// MaxSuggestions caps the suggestion list.
	MaxSuggestions = 5
	fallbackCount  = 3
)

var popularNames = []string{"Anna", "Maria", "Alice", "Sofia", "Eva", "Victoria", "Daria", "Kate"}

// PopularNames returns a copy of the fallback name list.
func PopularNames() []string {
	return append([]string(nil), popularNames...)
}

// Suggest returns up to MaxSuggestions replacement names for an invalid name:
// its sanitized form, its transliteration, then popular fallback names.
// Entries are not deduplicated across sources.
func Suggest(name string) []string {
	suggestions := make([]string, 0, MaxSuggestions)

	if sanitized := Sanitize(name); sanitized != "" && sanitized != name {
		suggestions = append(suggestions, sanitized)
	}
	if latin := Transliterate(name); latin != "" && latin != name {
		suggestions = append(suggestions, latin)
	}
	suggestions = append(suggestions, popularNames[:fallbackCount]...)

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
