package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/theme"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

func errorPage(status int) ModulePage {
	return ModulePage{
		Title:      "Oops",
		StatusCode: status,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.ErrorState(status, loc)
		},
	}
}

func TestWriteModulePageFullDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/gallery/?lang=en", nil)
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "light"})
	rr := httptest.NewRecorder()
	page := errorPage(http.StatusNotFound)
	page.ScrollLocked = true
	if err := WriteModulePage(rr, req, page); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Find("html").AttrOr("lang", ""); got != "en" {
		t.Fatalf("lang = %q", got)
	}
	if got := doc.Find("html").AttrOr("data-theme", ""); got != "light" {
		t.Fatalf("data-theme = %q", got)
	}
	if !doc.Find("body").HasClass("scroll-locked") {
		t.Fatalf("body not scroll-locked")
	}
	if doc.Find("main .error-state").Length() != 1 {
		t.Fatalf("fragment not inside main")
	}
	if href := doc.Find(`.menu-theme a[data-theme-option="dark"]`).AttrOr("href", ""); !strings.Contains(href, "return=%2Fgallery%2F%3Flang%3Den") {
		t.Fatalf("theme href = %q", href)
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), "hro_lang=en") {
		t.Fatalf("language cookie not persisted: %q", rr.Header().Get("Set-Cookie"))
	}
}

func TestWriteModulePageUsesBuiltFragmentOrNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment func(loc webi18n.Localizer) templ.Component
		want     string
	}{
		{name: "no builder", fragment: nil, want: ""},
		{name: "builder returns nil", fragment: func(webi18n.Localizer) templ.Component { return nil }, want: ""},
		{name: "builder returns component", fragment: func(webi18n.Localizer) templ.Component { return templ.Raw("<p id=\"built\">hi</p>") }, want: `<p id="built">hi</p>`},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		if err := WriteModulePage(rr, req, ModulePage{Fragment: tc.fragment}); err != nil {
			t.Fatalf("%s: WriteModulePage() error = %v", tc.name, err)
		}
		if got := rr.Body.String(); got != tc.want {
			t.Fatalf("%s: body = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestWriteModulePageHTMXFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/gallery/photos/1", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, errorPage(0)); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, "site-header") {
		t.Fatalf("fragment response contains layout: %q", body)
	}
	if !strings.Contains(body, "error-state") {
		t.Fatalf("fragment missing: %q", body)
	}
}
