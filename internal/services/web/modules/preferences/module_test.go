package preferences

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/theme"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func cookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestThemeSwitchSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/preferences/theme?mode=dark&return=%2Fgallery%2Fphotos%2F2", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/gallery/photos/2" {
		t.Fatalf("Location = %q", got)
	}
	c := cookie(rr, theme.CookieName)
	if c == nil || c.Value != "dark" {
		t.Fatalf("theme cookie = %#v", c)
	}
}

func TestLanguageSwitchSetsCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/preferences/lang?lang=ko&return=%2F%23contact", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	c := cookie(rr, i18nhttp.LangCookieName)
	if c == nil || c.Value != "ko" {
		t.Fatalf("language cookie = %#v", c)
	}
}

func TestPreferenceRedirectStaysOnSite(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	for _, target := range []string{
		"/preferences/theme?mode=light&return=https%3A%2F%2Fevil.example%2F",
		"/preferences/theme?mode=light&return=%2F%2Fevil.example",
		"/preferences/lang?lang=en&return=%2F%5Cevil.example",
		"/preferences/lang?lang=en",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if got := rr.Header().Get("Location"); got != "/" {
			t.Fatalf("GET %s Location = %q, want /", target, got)
		}
	}
}

func TestPreferenceRejectsUnknownValues(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	for _, target := range []string{"/preferences/theme?mode=neon", "/preferences/lang?lang=xx"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want 400", target, rr.Code)
		}
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("GET %s set a cookie", target)
		}
	}
}
