// Package i18n renders localized error messages from the errors namespace of
// the embedded message catalogs.
package i18n

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/charnorm/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

const namespace = "errors"

// Catalog maps error codes to message templates for a specific locale. The
// templates live in an x/text message catalog and are looked up through a
// printer for the catalog's language tag.
type Catalog struct {
	locale  string
	printer *message.Printer
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds override and runtime-built catalogs by resolved locale.
	catalogs = map[string]*Catalog{}
)

// GetCatalog returns the catalog best matching locale. Unknown locales fall
// back to en-US.
func GetCatalog(locale string) *Catalog {
	if c, ok := lookupCatalog(locale); ok {
		return c
	}

	resolvedLocale, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(locale, namespace)
	if c, ok := lookupCatalog(resolvedLocale); ok {
		return c
	}
	return storeCatalogIfAbsent(resolvedLocale, NewCatalog(resolvedLocale, messages))
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found, and to the
// raw template if it cannot be parsed or executed.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl := c.printer.Sprintf(message.Key(code, ""))
	if tmpl == "" {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale, replacing any
// existing one.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
// Locales that are not valid BCP 47 tags are stored under the undetermined
// language.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	builder := xcatalog.NewBuilder()
	for key, value := range messages {
		// The printer treats values as format strings.
		if err := builder.SetString(tag, key, strings.ReplaceAll(value, "%", "%%")); err != nil {
			log.Printf("i18n: message %s for %s: %v", key, locale, err)
		}
	}
	return &Catalog{
		locale:  locale,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
