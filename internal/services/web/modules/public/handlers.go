package public

import (
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/gallery"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/pagerender"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/weberror"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

// TeaserSize is how many recent photos the landing page previews.
const TeaserSize = 6

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	form := webtemplates.ContactFormView{Sent: r.URL.Query().Get("sent") == "1"}
	WriteLanding(w, r, h.deps, form, http.StatusOK)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// WriteLanding renders the landing page with the given contact form state.
// The media teaser follows the gallery's fail-silent policy.
func WriteLanding(w http.ResponseWriter, r *http.Request, deps module.Dependencies, form webtemplates.ContactFormView, statusCode int) {
	logger := deps.LoggerOrDefault()
	photos := gallery.LoadPhotos(r.Context(), deps.Sessions, deps.Gallery, deps.CDN, "", logger)
	teaser := photos.GridItems(TeaserSize)

	err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		TitleKey:   "site.title",
		StatusCode: statusCode,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.Landing(webtemplates.LandingView{
				Teaser:         teaser,
				GallerySession: photos.Session,
				Leaders:        deps.Roster,
				Contact:        form,
			}, loc)
		},
	})
	if err != nil {
		logger.Printf("landing render failed err=%v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
