// Package weberror renders localized error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/hustredowls/redowls.club/internal/services/web/platform/errors"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/pagerender"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

// ShouldRenderAppError reports whether statusCode gets the error page rather
// than a plain text body.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe message for err.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes the error page for statusCode. Codes that do not get
// an error page are treated as 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.ModulePage{
		TitleKey:   webtemplates.ErrorTitleKey(statusCode),
		StatusCode: statusCode,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.ErrorState(statusCode, loc)
		},
	}
	if err := pagerender.WriteModulePage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes err as an error page or a plain localized message.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
