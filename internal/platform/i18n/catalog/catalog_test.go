package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasPublishedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{"vi", "en", "ja", "ko"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		if got := bundle.Namespaces(locale); len(got) != 2 || got[0] != "core" || got[1] != "web" {
			t.Fatalf("Namespaces(%s) = %v, want [core web]", locale, got)
		}
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s is missing keys %v", locale, missing)
		}
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFS(fstest.MapFS{
		"locales/vi/core.yaml": {Data: []byte("locale: en\nnamespace: core\nmessages:\n  a: b\n")},
	})
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFS(fstest.MapFS{
		"locales/vi/core.yaml": {Data: []byte("locale: vi\nnamespace: core\nmessages:\n  a.key: a\n")},
		"locales/vi/web.yaml":  {Data: []byte("locale: vi\nnamespace: web\nmessages:\n  a.key: b\n")},
	})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFS(fstest.MapFS{
		"locales/en/core.yaml": {Data: []byte("locale: en\nnamespace: core\nmessages:\n  a: b\n")},
	})
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFS(fstest.MapFS{
		"locales/vi/core.yaml": {Data: []byte("locale: [vi\n")},
	})
	if err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/vi/core.yaml": {Data: []byte("locale: vi\nnamespace: core\nmessages:\n  greeting: xin chào\n  bye: tạm biệt\n")},
		"locales/en/core.yaml": {Data: []byte("locale: en\nnamespace: core\nmessages:\n  greeting: hello\n")},
	})
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	if got, ok := bundle.Message("en", "greeting"); !ok || got != "hello" {
		t.Fatalf("Message(en, greeting) = (%q, %v)", got, ok)
	}
	if got, ok := bundle.Message("en", "bye"); !ok || got != "tạm biệt" {
		t.Fatalf("Message(en, bye) = (%q, %v)", got, ok)
	}
	if missing := bundle.MissingKeys("en"); len(missing) != 1 || missing[0] != "bye" {
		t.Fatalf("MissingKeys(en) = %v", missing)
	}
}

func TestDefaultBundleRegistersPrinters(t *testing.T) {
	t.Parallel()

	Default()
	p := message.NewPrinter(language.English)
	if got := p.Sprintf("gallery.photo_alt", 2, 5); got != "Photo 2 of 5" {
		t.Fatalf("Sprintf(gallery.photo_alt) = %q", got)
	}
	p = message.NewPrinter(language.Vietnamese)
	if got := p.Sprintf("nav.gallery"); got != "Thư viện ảnh" {
		t.Fatalf("Sprintf(nav.gallery) = %q", got)
	}
}
