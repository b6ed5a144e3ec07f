package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/services/gallery/viewer"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// LightboxID is the element id the lightbox fragment replaces.
const LightboxID = "lightbox"

// GridItem is one photo tile in the grid, teaser or preview strip.
type GridItem struct {
	Index       int
	Total       int
	Thumbnail   string
	Placeholder string
	Width       int
	Height      int
	Alt         string
	// Session is the gallery session the tile's link stays in.
	Session string
}

// LightboxView is the open lightbox for one photo.
type LightboxView struct {
	Index       int
	Total       int
	Display     string
	Backdrop    string
	Placeholder string
	Width       int
	Height      int
	Alt         string
	HasPrevious bool
	HasNext     bool
	Strip       []GridItem
	// StripOffset and StripThumbWidth let the page script centre the active
	// thumbnail once the live strip width is known.
	StripOffset     int
	StripThumbWidth int
	Session         string
}

// GalleryView is the gallery page state. A nil Lightbox means the grid is
// showing on its own.
type GalleryView struct {
	Items    []GridItem
	Lightbox *LightboxView
}

// Gallery renders the grid and the lightbox container.
func Gallery(view GalleryView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="gallery">`)
		m.element("h1", T(loc, "gallery.title"))
		m.raw(`<div class="gallery-grid">`)
		for _, item := range view.Items {
			m.component(ctx, gridItem(item, loc))
		}
		m.raw("</div></section>")
		if view.Lightbox == nil {
			m.component(ctx, ClosedLightbox())
			return
		}
		m.component(ctx, Lightbox(*view.Lightbox, loc))
	})
}

func photoAlt(item GridItem, loc Localizer) string {
	if item.Alt != "" {
		return item.Alt
	}
	return T(loc, "gallery.photo_alt", item.Index+1, item.Total)
}

func gridItem(item GridItem, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("a",
			"href", routepath.GalleryPhoto(item.Index, item.Session),
			"class", "grid-item",
			"data-lightbox-link", "",
			"data-index", strconv.Itoa(item.Index),
		)
		m.raw("<img")
		m.attr("src", item.Thumbnail)
		m.attr("alt", photoAlt(item, loc))
		m.intAttr("width", item.Width)
		m.intAttr("height", item.Height)
		m.attr("loading", "lazy")
		m.attr("decoding", "async")
		if style := backgroundImage(item.Placeholder); style != "" {
			m.attr("style", style)
		}
		m.raw("></a>")
	})
}

// ClosedLightbox is the empty lightbox container shown with the grid.
func ClosedLightbox() templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div id="`, LightboxID, `" class="lightbox" hidden></div>`)
	})
}

// Lightbox renders the open lightbox for one photo.
func Lightbox(view LightboxView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		closeURL := routepath.GalleryPhotoKey(view.Index, view.Session, string(viewer.KeyEscape))
		m.open("div",
			"id", LightboxID,
			"class", "lightbox open",
			"role", "dialog",
			"aria-modal", "true",
			"aria-label", photoAlt(GridItem{Index: view.Index, Total: view.Total, Alt: view.Alt}, loc),
			"data-index", strconv.Itoa(view.Index),
			"data-key-url", routepath.GalleryPhotoKey(view.Index, view.Session, ""),
			"data-strip-offset", strconv.Itoa(view.StripOffset),
			"data-strip-thumb-width", strconv.Itoa(view.StripThumbWidth),
		)
		scrim := []string{"href", closeURL, "class", "lightbox-scrim", "aria-hidden", "true", "tabindex", "-1"}
		if style := backgroundImage(view.Backdrop); style != "" {
			scrim = append(scrim, "style", style)
		}
		m.open("a", scrim...)
		m.raw("</a>")
		m.element("a", T(loc, "gallery.close"), "href", closeURL, "class", "lightbox-close", "data-key", string(viewer.KeyEscape))
		if view.HasPrevious {
			m.element("a", T(loc, "gallery.previous"),
				"href", routepath.GalleryPhoto(view.Index-1, view.Session),
				"class", "lightbox-previous",
				"data-key", string(viewer.KeyArrowLeft),
			)
		}
		m.raw(`<figure class="lightbox-photo">`)
		m.raw("<img")
		m.attr("src", view.Display)
		m.attr("alt", photoAlt(GridItem{Index: view.Index, Total: view.Total, Alt: view.Alt}, loc))
		m.intAttr("width", view.Width)
		m.intAttr("height", view.Height)
		if style := backgroundImage(view.Placeholder); style != "" {
			m.attr("style", style)
		}
		m.raw("></figure>")
		if view.HasNext {
			m.element("a", T(loc, "gallery.next"),
				"href", routepath.GalleryPhoto(view.Index+1, view.Session),
				"class", "lightbox-next",
				"data-key", string(viewer.KeyArrowRight),
			)
		}

		m.open("nav", "class", "lightbox-strip", "aria-label", T(loc, "gallery.strip"))
		for _, item := range view.Strip {
			attrs := []string{
				"href", routepath.GalleryPhoto(item.Index, view.Session),
				"class", "strip-thumb",
				"data-lightbox-link", "",
				"data-index", strconv.Itoa(item.Index),
			}
			if item.Index == view.Index {
				attrs[3] = "strip-thumb active"
				attrs = append(attrs, "aria-current", "true")
			}
			m.open("a", attrs...)
			m.raw("<img")
			m.attr("src", item.Thumbnail)
			m.attr("alt", photoAlt(item, loc))
			m.attr("loading", "lazy")
			if style := backgroundImage(item.Placeholder); style != "" {
				m.attr("style", style)
			}
			m.raw("></a>")
		}
		m.raw("</nav></div>")
	})
}
