package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if empty := GetCatalog(""); empty != base {
		t.Fatal("expected empty locale to resolve to en-US catalog")
	}
}

func TestGetCatalogResolvesRussian(t *testing.T) {
	cat := GetCatalog("ru")
	if cat.Locale() != "ru-RU" {
		t.Fatalf("locale = %q, want ru-RU", cat.Locale())
	}
	if got := cat.Format("CHARACTER_NAME_TOO_SHORT", map[string]string{"Min": "2"}); got != "Имя персонажа должно содержать не менее 2 символов" {
		t.Fatalf("message = %q", got)
	}
}

func TestFormatNameMessages(t *testing.T) {
	cat := GetCatalog("en-US")
	if got := cat.Format("CHARACTER_NAME_TOO_LONG", map[string]string{"Max": "50"}); got != "Character name must be at most 50 characters long" {
		t.Fatalf("message = %q", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}

func TestFormatKeepsPercentSigns(t *testing.T) {
	cat := NewCatalog("en-US", map[Code]string{
		"code": "100% {{.Name}}",
	})
	if got := cat.Format("code", map[string]string{"Name": "sure"}); got != "100% sure" {
		t.Fatalf("message = %q", got)
	}
}

func TestNewCatalogAcceptsUnparsableLocale(t *testing.T) {
	cat := NewCatalog("not a locale!", map[Code]string{"code": "ok"})
	if cat.Locale() != "not a locale!" {
		t.Fatalf("locale = %q", cat.Locale())
	}
	if got := cat.Format("code", nil); got != "ok" {
		t.Fatalf("message = %q", got)
	}
}

func TestNewCatalogCopiesMessages(t *testing.T) {
	messages := map[Code]string{"code": "before"}
	cat := NewCatalog("en-US", messages)
	messages["code"] = "after"
	if got := cat.Format("code", nil); got != "before" {
		t.Fatalf("message = %q", got)
	}
}
