package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/services/shared/i18nhttp"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/theme"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// LayoutView is the page chrome state for one request.
type LayoutView struct {
	Title string
	Lang  string
	Theme theme.Mode
	// Path is the current request URI, used as the return target of the
	// preference menus.
	Path         string
	ScrollLocked bool
	Year         int
}

// PageTitle joins a page title with the site name.
func PageTitle(title string, loc Localizer) string {
	site := T(loc, "site.title")
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}

// Layout renders the full document around the children in ctx.
func Layout(view LayoutView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		mode := view.Theme
		if mode == "" {
			mode = theme.ModeSystem
		}
		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", view.Lang, "data-theme", string(mode))
		m.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", PageTitle(view.Title, loc))
		m.open("meta", "name", "description", "content", T(loc, "site.tagline"))
		m.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"site.css")
		m.raw(`<script src="`, routepath.StaticPrefix, `gallery.js" defer></script></head>`)
		if view.ScrollLocked {
			m.open("body", "class", "scroll-locked")
		} else {
			m.raw("<body>")
		}
		m.component(ctx, Header(view, loc))
		m.raw(`<main id="main">`)
		m.component(ctx, templ.GetChildren(ctx))
		m.raw("</main>")
		m.raw(`<footer class="site-footer">`)
		m.element("p", T(loc, "footer.copyright", strconv.Itoa(view.Year)))
		m.raw("</footer></body></html>")
	})
}

// Header renders the site navigation with the language and theme menus.
func Header(view LayoutView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<header class="site-header">`)
		m.element("a", T(loc, "site.title"), "class", "brand", "href", routepath.Root)
		m.raw(`<nav class="site-nav">`)
		m.element("a", T(loc, "nav.home"), "href", routepath.Root)
		m.element("a", T(loc, "nav.about"), "href", routepath.Root+"#about")
		m.element("a", T(loc, "nav.activities"), "href", routepath.Root+"#activities")
		m.element("a", T(loc, "nav.gallery"), "href", routepath.Gallery)
		m.element("a", T(loc, "nav.contact"), "href", routepath.Root+"#"+routepath.ContactAnchor)
		m.raw("</nav>")

		options := i18nhttp.BuildLanguageOptions(i18nhttp.Supported(), view.Lang, func(tag language.Tag) string {
			return T(loc, i18nhttp.LanguageKeyLabel(tag))
		})
		m.raw(`<details class="menu menu-language">`)
		m.element("summary", T(loc, "menu.language")+": "+i18nhttp.ActiveLanguageLabel(options))
		m.raw("<ul>")
		for _, option := range options {
			m.raw("<li>")
			m.open("a", "href", routepath.LanguagePreference(option.Tag, view.Path), "hreflang", option.Tag, "lang", option.Tag)
			if option.Active {
				m.raw(`<span aria-current="true">`)
				m.text(option.Label)
				m.raw("</span>")
			} else {
				m.text(option.Label)
			}
			m.raw("</a></li>")
		}
		m.raw("</ul></details>")

		m.raw(`<details class="menu menu-theme">`)
		m.element("summary", T(loc, "menu.theme"))
		m.raw("<ul>")
		for _, mode := range theme.Modes() {
			attrs := []string{"href", routepath.ThemePreference(string(mode), view.Path), "data-theme-option", string(mode)}
			if mode == view.Theme {
				attrs = append(attrs, "aria-current", "true")
			}
			m.raw("<li>")
			m.element("a", T(loc, mode.LabelKey()), attrs...)
			m.raw("</li>")
		}
		m.raw("</ul></details></header>")
	})
}

// ErrorTitleKey is the catalog key of an error page title.
func ErrorTitleKey(statusCode int) string {
	return errorKey(statusCode) + ".title"
}

// ErrorPageTitle is the localized title of an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, ErrorTitleKey(statusCode))
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		key := errorKey(statusCode)
		m.open("section", "class", "error-state", "data-status", strconv.Itoa(statusCode))
		m.element("h1", T(loc, key+".title"))
		m.element("p", T(loc, key+".body"))
		m.element("a", T(loc, "error.back_home"), "href", routepath.Root, "class", "button")
		m.raw("</section>")
	})
}

func errorKey(statusCode int) string {
	switch {
	case statusCode == 404:
		return "error.not_found"
	case statusCode == 403:
		return "error.forbidden"
	case statusCode >= 400 && statusCode < 500:
		return "error.bad_request"
	default:
		return "error.internal"
	}
}
