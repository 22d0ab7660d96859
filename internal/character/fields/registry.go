// Package fields extracts structured character attributes from free-form
// prompt text.
//
// The registry is data: each canonical field owns an ordered list of header
// patterns. Extraction walks the fields in registry order and, for each field,
// its patterns in declared order. Adding a synonym means editing the table,
// never the extractor.
package fields

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Field is a canonical character attribute name.
type Field string

const (
	FieldPersonality Field = "personality"
	FieldSituation   Field = "situation"
	FieldAppearance  Field = "appearance"
	FieldLocation    Field = "location"
	FieldBackground  Field = "background"
	FieldOccupation  Field = "occupation"
	FieldHobbies     Field = "hobbies"
	FieldSpeechStyle Field = "speech_style"
	FieldGreeting    Field = "greeting"
)

// Pattern is one header variant for a field. Header is a regular expression
// fragment matching the accepted header synonyms, without decoration.
type Pattern struct {
	Header string
}

// Entry binds a field to its ordered header variants.
type Entry struct {
	Field    Field
	Patterns []Pattern
}

// DefaultEntries returns the built-in header table in processing order.
func DefaultEntries() []Entry {
	return []Entry{
		{Field: FieldPersonality, Patterns: []Pattern{
			{Header: `personality\s+and\s+character|character\s+and\s+personality`},
			{Header: `personality(?:\s+traits)?`},
		}},
		{Field: FieldSituation, Patterns: []Pattern{
			{Header: `role[- ]?playing\s+situation|roleplay(?:ing)?\s+situation`},
			{Header: `situation|scenario`},
		}},
		{Field: FieldAppearance, Patterns: []Pattern{
			{Header: `physical\s+appearance|appearance`},
		}},
		{Field: FieldLocation, Patterns: []Pattern{
			{Header: `location|setting`},
		}},
		{Field: FieldBackground, Patterns: []Pattern{
			{Header: `background|backstory`},
		}},
		{Field: FieldOccupation, Patterns: []Pattern{
			{Header: `occupation|profession`},
		}},
		{Field: FieldHobbies, Patterns: []Pattern{
			{Header: `hobbies|interests`},
		}},
		{Field: FieldSpeechStyle, Patterns: []Pattern{
			{Header: `speech\s+style|speaking\s+style|manner\s+of\s+speech`},
		}},
		{Field: FieldGreeting, Patterns: []Pattern{
			{Header: `greeting|first\s+message`},
		}},
	}
}

const (
	// headerPrefix allows indentation plus a markdown heading or emphasis
	// marker before the synonym.
	headerPrefix = `(?im)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*|__)?[ \t]*`
	// headerSuffix consumes closing emphasis, an optional colon and the
	// spaces before same-line content. It never crosses a line break.
	headerSuffix = `[ \t]*(?:\*\*|__)?[ \t]*:?[ \t]*(?:\*\*|__)?[ \t]*`

	// Stops begin at a newline so text on the header line never ends the
	// capture.
	blankLineStop         = `\n[ \t]*\r?\n`
	ruleLineStop          = `(?m)\n[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*\r?$|\n[ \t]*#{1,6}[ \t]`
	otherHeaderStopPrefix = `(?i)\n[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*|__)?[ \t]*`
)

type variant struct {
	header *regexp.Regexp
	stop   *regexp.Regexp
	err    error
}

type compiledEntry struct {
	field    Field
	variants []variant
}

// Registry is an immutable, compiled header table. It is safe for concurrent
// use.
type Registry struct {
	entries []compiledEntry
}

var defaultRegistry = NewRegistry(DefaultEntries())

// Default returns the process-wide registry built from DefaultEntries.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry compiles entries in the given order. A pattern that fails to
// compile is logged and kept as a permanent non-match; it never prevents the
// remaining patterns from compiling.
func NewRegistry(entries []Entry) *Registry {
	valid := make([][]string, len(entries))
	for i, entry := range entries {
		for _, pattern := range entry.Patterns {
			if _, err := regexp.Compile(`(?i)(?:` + pattern.Header + `)`); err != nil {
				continue
			}
			valid[i] = append(valid[i], pattern.Header)
		}
	}

	registry := &Registry{entries: make([]compiledEntry, 0, len(entries))}
	for _, entry := range entries {
		var others []string
		for j := range entries {
			if entries[j].Field == entry.Field {
				continue
			}
			others = append(others, valid[j]...)
		}
		stop, stopErr := compileStop(others)

		compiled := compiledEntry{field: entry.Field}
		for _, pattern := range entry.Patterns {
			compiled.variants = append(compiled.variants, compileVariant(entry.Field, pattern, stop, stopErr))
		}
		registry.entries = append(registry.entries, compiled)
	}
	return registry
}

// Fields returns the canonical fields in processing order.
func (r *Registry) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.field)
	}
	return out
}

func compileVariant(field Field, pattern Pattern, stop *regexp.Regexp, stopErr error) variant {
	if stopErr != nil {
		log.Printf("fields: stop expression for %s: %v", field, stopErr)
		return variant{err: stopErr}
	}
	header, err := regexp.Compile(headerPrefix + `(?:` + pattern.Header + `)\b` + headerSuffix)
	if err != nil {
		err = fmt.Errorf("compile header %q for %s: %w", pattern.Header, field, err)
		log.Printf("fields: %v", err)
		return variant{err: err}
	}
	return variant{header: header, stop: stop}
}

func compileStop(otherHeaders []string) (*regexp.Regexp, error) {
	alternatives := []string{blankLineStop, ruleLineStop}
	if len(otherHeaders) > 0 {
		alternatives = append(alternatives,
			otherHeaderStopPrefix+`(?:`+strings.Join(otherHeaders, "|")+`)\b`)
	}
	return regexp.Compile(`(?:` + strings.Join(alternatives, `)|(?:`) + `)`)
}
