package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
)

func TestResolveLocalizerPersistsQueryLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	if lang != "en" {
		t.Fatalf("lang = %q, want en", lang)
	}
	if got := loc.Sprintf("nav.gallery"); got != "Gallery" {
		t.Fatalf("nav.gallery = %q, want Gallery", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != i18nhttp.LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookies = %#v", cookies)
	}
}

func TestResolveLocalizerDefaultsWithoutCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	_, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "vi" {
		t.Fatalf("lang = %q, want vi", lang)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("unexpected cookie for default language")
	}
}
