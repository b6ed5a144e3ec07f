package gallery

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/gallery/viewer"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/httpx"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/pagerender"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/weberror"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

type handlers struct {
	source   catalog.Source
	sessions *catalog.Sessions
	cdn      imagecdn.CDN
	strip    viewer.PreviewStrip
	logger   *log.Logger
}

func newHandlers(deps module.Dependencies) handlers {
	strip := deps.Strip
	if strip.ThumbWidthPX <= 0 {
		strip = viewer.DefaultPreviewStrip
	}
	sessions := deps.Sessions
	if sessions == nil {
		sessions = catalog.NewSessions(0, 0)
	}
	return handlers{
		source:   deps.Gallery,
		sessions: sessions,
		cdn:      deps.CDN,
		strip:    strip,
		logger:   deps.LoggerOrDefault(),
	}
}

// photos returns the snapshot of the request's viewer session, loading a
// new one when the session is unknown. Load failures render as an empty
// gallery.
func (h handlers) photos(r *http.Request) Photos {
	session := r.URL.Query().Get(routepath.SessionParam)
	return LoadPhotos(r.Context(), h.sessions, h.source, h.cdn, session, h.logger)
}

func (h handlers) handleGrid(w http.ResponseWriter, r *http.Request) {
	h.writeGallery(w, r, h.photos(r), viewer.Grid())
}

func (h handlers) handlePhoto(w http.ResponseWriter, r *http.Request) {
	photos := h.photos(r)
	index, ok := parseIndex(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	state, changed := viewer.Grid().Select(index, photos.Catalog.Len())
	if !changed {
		h.handleNotFound(w, r)
		return
	}
	if httpx.IsHTMXRequest(r) {
		httpx.SetPushURL(w, routepath.GalleryPhoto(index, photos.Session))
		h.writeLightbox(w, r, photos, state)
		return
	}
	h.writeGallery(w, r, photos, state)
}

// handleKey applies one keyboard event to the lightbox showing {index}.
// Fragment clients get 204 when the key changes nothing.
func (h handlers) handleKey(w http.ResponseWriter, r *http.Request) {
	photos := h.photos(r)
	index, ok := parseIndex(r)
	if !ok || !photos.Catalog.Valid(index) {
		h.handleNotFound(w, r)
		return
	}
	key := viewer.Key(r.URL.Query().Get("key"))
	next, changed := viewer.Lightbox(index).HandleKey(key, photos.Catalog.Len())
	htmx := httpx.IsHTMXRequest(r)
	if !changed {
		if htmx {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, routepath.GalleryPhoto(index, photos.Session), http.StatusSeeOther)
		return
	}

	target := routepath.GalleryGrid(photos.Session)
	if selected, open := next.Selected(); open {
		target = routepath.GalleryPhoto(selected, photos.Session)
	}
	if !htmx {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	httpx.SetPushURL(w, target)
	h.writeLightbox(w, r, photos, next)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) writeGallery(w http.ResponseWriter, r *http.Request, photos Photos, state viewer.State) {
	view := webtemplates.GalleryView{Items: photos.GridItems(0)}
	if lightbox, open := photos.Lightbox(state, h.strip); open {
		view.Lightbox = &lightbox
	}
	h.write(w, r, pagerender.ModulePage{
		TitleKey:     "gallery.title",
		ScrollLocked: state.ScrollLocked(),
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.Gallery(view, loc)
		},
	})
}

// writeLightbox renders only the lightbox container, open or closed.
func (h handlers) writeLightbox(w http.ResponseWriter, r *http.Request, photos Photos, state viewer.State) {
	lightbox, open := photos.Lightbox(state, h.strip)
	h.write(w, r, pagerender.ModulePage{
		TitleKey:     "gallery.title",
		ScrollLocked: open,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			if !open {
				return webtemplates.ClosedLightbox()
			}
			return webtemplates.Lightbox(lightbox, loc)
		},
	})
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, page); err != nil {
		h.logger.Printf("gallery render failed path=%s err=%v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func parseIndex(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
