// Package preferences stores the visitor's theme and language choices.
package preferences

import (
	"net/http"

	platformi18n "github.com/hustredowls/redowls.club/internal/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	apperrors "github.com/hustredowls/redowls.club/internal/services/web/platform/errors"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/requestmeta"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/theme"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/weberror"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// Module provides the preference switch routes.
type Module struct{}

// New returns the preferences module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "preferences" }

// Mount registers the theme and language switches.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{requestMeta: deps.RequestMeta}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.PreferencesTheme, h.handleTheme)
	mux.HandleFunc(http.MethodGet+" "+routepath.PreferencesLang, h.handleLanguage)
	mux.HandleFunc(routepath.PreferencesPrefix+"{rest...}", func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound)
	})
	return module.Mount{Prefix: routepath.PreferencesPrefix, Handler: mux}, nil
}

type handlers struct {
	requestMeta requestmeta.SchemePolicy
}

func (h handlers) handleTheme(w http.ResponseWriter, r *http.Request) {
	mode, ok := theme.Parse(r.URL.Query().Get("mode"))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.body", "unknown theme mode"))
		return
	}
	theme.SetCookie(w, mode, h.requestMeta.IsHTTPS(r))
	http.Redirect(w, r, routepath.SafeReturn(r.URL.Query().Get("return")), http.StatusSeeOther)
}

func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	tag, ok := platformi18n.ParseTag(r.URL.Query().Get(i18nhttp.LangParam))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.body", "unknown language"))
		return
	}
	i18nhttp.SetLanguageCookie(w, tag)
	http.Redirect(w, r, routepath.SafeReturn(r.URL.Query().Get("return")), http.StatusSeeOther)
}
