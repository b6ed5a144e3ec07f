// Package i18n resolves the page localizer for a request.
package i18n

import (
	"net/http"

	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveLocalizer picks the request language, persists an explicit ?lang=
// choice, and returns its printer with the language tag.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18nhttp.ResolveTag(r)
	if persist {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	return i18nhttp.Printer(tag), tag.String()
}
