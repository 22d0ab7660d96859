// Package catalog loads the embedded per-locale message catalogs and resolves
// requested locales against them.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string
	Namespace string
	Messages  map[string]string
}

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
}

// Bundle contains all locale catalogs and a matcher over their tags.
type Bundle struct {
	locales map[string]*LocaleCatalog
	tags    []language.Tag
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files laid out as locales/<locale>/<namespace>.yaml.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		parsed, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := bundle.addFile(path, parsed); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.buildMatcher(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(path string, file catalogFile) error {
	localeFromPath := filepath.Base(filepath.Dir(path))
	namespaceFromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", path, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", path, namespace, namespaceFromPath)
	}

	localeCatalog, ok := b.locales[locale]
	if !ok {
		localeCatalog = &LocaleCatalog{Locale: locale, Namespaces: map[string]map[string]string{}}
		b.locales[locale] = localeCatalog
	}
	if _, exists := localeCatalog.Namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", path, namespace, locale)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		messages[trimmedKey] = value
	}
	localeCatalog.Namespaces[namespace] = messages
	return nil
}

// buildMatcher orders the base locale first so it wins ties and unmatched
// requests.
func (b *Bundle) buildMatcher() error {
	locales := b.Locales()
	tags := make([]language.Tag, 0, len(locales))
	base, err := language.Parse(BaseLocale)
	if err != nil {
		return fmt.Errorf("parse base locale: %w", err)
	}
	tags = append(tags, base)
	for _, locale := range locales {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	b.tags = tags
	b.matcher = language.NewMatcher(tags)
	return nil
}

// Match resolves a requested locale or Accept-Language style list to the
// closest catalog locale. Unknown or malformed input resolves to BaseLocale.
func (b *Bundle) Match(requested string) string {
	if b == nil || b.matcher == nil {
		return BaseLocale
	}
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return BaseLocale
	}
	if b.HasLocale(requested) {
		return requested
	}
	tags, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(b.tags) {
		return BaseLocale
	}
	return b.tags[index].String()
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// NamespaceMessages returns an exact namespace message map copy for a locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok || catalog == nil {
		return map[string]string{}
	}
	messages, ok := catalog.Namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return copyMap(messages)
}

// NamespaceMessagesWithFallback matches locale against the bundle and returns
// the namespace messages together with the locale that satisfied the lookup.
func (b *Bundle) NamespaceMessagesWithFallback(locale string, namespace string) (string, map[string]string) {
	resolved := b.Match(locale)
	if messages := b.NamespaceMessages(resolved, namespace); len(messages) > 0 {
		return resolved, messages
	}
	return BaseLocale, b.NamespaceMessages(BaseLocale, namespace)
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	out := catalogFile{Messages: map[string]string{}}
	inMessages := false

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "locale:"):
			value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse locale: %w", err)
			}
			out.Locale = value
		case strings.HasPrefix(line, "namespace:"):
			value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse namespace: %w", err)
			}
			out.Namespace = value
		case line == "messages:":
			inMessages = true
		default:
			if !inMessages {
				return catalogFile{}, fmt.Errorf("unexpected line %q", line)
			}
			key, value, err := parseMessageEntry(line)
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse message entry %q: %w", line, err)
			}
			out.Messages[key] = value
		}
	}

	switch {
	case out.Locale == "":
		return catalogFile{}, fmt.Errorf("missing locale")
	case out.Namespace == "":
		return catalogFile{}, fmt.Errorf("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

// parseMessageEntry parses one `"key": "value"` line.
func parseMessageEntry(line string) (string, string, error) {
	keyToken, rest, err := splitQuotedToken(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(rest, ":")))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

func splitQuotedToken(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "\"") {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(trimmed); i++ {
		switch ch := trimmed[i]; {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return trimmed[:i+1], trimmed[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
