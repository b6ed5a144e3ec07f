// Package theme resolves and persists the visitor's colour theme.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// CookieName stores the theme preference.
const CookieName = "hro_theme"

// Mode is a colour theme preference.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

var modes = []Mode{ModeLight, ModeDark, ModeSystem}

// Modes returns every selectable mode in menu order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Parse accepts a mode name, case-insensitively.
func Parse(value string) (Mode, bool) {
	candidate := Mode(strings.ToLower(strings.TrimSpace(value)))
	for _, mode := range modes {
		if mode == candidate {
			return mode, true
		}
	}
	return ModeSystem, false
}

// LabelKey is the catalog key of the mode's label.
func (m Mode) LabelKey() string {
	return "theme." + string(m)
}

// Resolve reads the stored preference, defaulting to ModeSystem.
func Resolve(r *http.Request) Mode {
	if r == nil {
		return ModeSystem
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ModeSystem
	}
	mode, _ := Parse(cookie.Value)
	return mode
}

// SetCookie persists mode for a year.
func SetCookie(w http.ResponseWriter, mode Mode, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(mode),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
