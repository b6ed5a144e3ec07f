// Package pagerender writes module pages as full documents or HTMX fragments.
package pagerender

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/httpx"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/theme"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

// ModulePage describes one page response.
type ModulePage struct {
	Title string
	// TitleKey is translated into the title when Title is empty.
	TitleKey   string
	StatusCode int
	// Fragment builds the page body once the request localizer is known.
	Fragment     func(loc webi18n.Localizer) templ.Component
	ScrollLocked bool
}

// WriteModulePage renders page. HTMX requests get only the fragment; other
// requests get the fragment inside the site layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	var fragment templ.Component = templ.NopComponent
	if page.Fragment != nil {
		if built := page.Fragment(loc); built != nil {
			fragment = built
		}
	}

	title := page.Title
	if title == "" && page.TitleKey != "" {
		title = loc.Sprintf(page.TitleKey)
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(webtemplates.LayoutView{
			Title:        title,
			Lang:         lang,
			Theme:        theme.Resolve(r),
			Path:         r.URL.RequestURI(),
			ScrollLocked: page.ScrollLocked,
			Year:         time.Now().Year(),
		}, loc)
		if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}
