package fields

import "strings"

// Fields maps canonical field names to their extracted, trimmed content. Only
// fields that were found are present.
type Fields map[Field]string

// Extract applies the default registry to prompt.
func Extract(prompt string) Fields {
	return Default().Extract(prompt)
}

// Extract returns the fields found in prompt. Fields are attempted in registry
// order and the first non-empty match for a field wins. The result is a fresh
// map owned by the caller.
func (r *Registry) Extract(prompt string) Fields {
	out := Fields{}
	if r == nil || strings.TrimSpace(prompt) == "" {
		return out
	}
	for _, entry := range r.entries {
		if _, ok := out[entry.field]; ok {
			continue
		}
		for _, v := range entry.variants {
			content, ok := v.match(prompt)
			if !ok {
				continue
			}
			out[entry.field] = content
			break
		}
	}
	return out
}

// match finds the first header occurrence and captures everything up to the
// nearest stop marker. Whitespace-only captures do not count.
func (v variant) match(prompt string) (string, bool) {
	if v.err != nil || v.header == nil {
		return "", false
	}
	loc := v.header.FindStringIndex(prompt)
	if loc == nil {
		return "", false
	}
	rest := prompt[loc[1]:]
	if v.stop != nil {
		if stop := v.stop.FindStringIndex(rest); stop != nil {
			rest = rest[:stop[0]]
		}
	}
	content := strings.TrimSpace(rest)
	if content == "" {
		return "", false
	}
	return content, true
}

// Ordered returns the found fields in the registry's processing order.
func (r *Registry) Ordered(found Fields) []Field {
	if r == nil || len(found) == 0 {
		return nil
	}
	out := make([]Field, 0, len(found))
	for _, entry := range r.entries {
		if _, ok := found[entry.field]; ok {
			out = append(out, entry.field)
		}
	}
	return out
}
