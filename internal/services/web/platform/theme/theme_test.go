package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{in: "light", want: ModeLight, ok: true},
		{in: " DARK ", want: ModeDark, ok: true},
		{in: "system", want: ModeSystem, ok: true},
		{in: "sepia", want: ModeSystem, ok: false},
		{in: "", want: ModeSystem, ok: false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Parse(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveReadsCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Resolve(req); got != ModeSystem {
		t.Fatalf("Resolve() without cookie = %q", got)
	}
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "dark"})
	if got := Resolve(req); got != ModeDark {
		t.Fatalf("Resolve() = %q, want dark", got)
	}

	bad := httptest.NewRequest(http.MethodGet, "/", nil)
	bad.AddCookie(&http.Cookie{Name: CookieName, Value: "neon"})
	if got := Resolve(bad); got != ModeSystem {
		t.Fatalf("Resolve() with junk cookie = %q", got)
	}
}

func TestSetCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetCookie(rr, ModeLight, true)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "light" || !c.Secure || !c.HttpOnly || c.Path != "/" {
		t.Fatalf("cookie = %#v", c)
	}
	if ModeDark.LabelKey() != "theme.dark" {
		t.Fatalf("LabelKey() = %q", ModeDark.LabelKey())
	}
}
