// Package templates renders the site's pages as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	webi18n "github.com/hustredowls/redowls.club/internal/services/web/platform/i18n"
)

// Localizer formats catalog messages for a page.
type Localizer = webi18n.Localizer

// T translates key with loc, returning key itself when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// markup writes HTML, keeping the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (m *markup) intAttr(name string, value int) {
	m.raw(" ", name, `="`, strconv.Itoa(value), `"`)
}

// attrs writes alternating name, value pairs.
func (m *markup) attrs(pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		m.attr(pairs[i], pairs[i+1])
	}
}

func (m *markup) open(tag string, attrs ...string) {
	m.raw("<", tag)
	m.attrs(attrs...)
	m.raw(">")
}

// element writes <tag attrs...>text</tag>.
func (m *markup) element(tag, text string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(text)
	m.raw("</", tag, ">")
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func component(render func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		render(ctx, m)
		return m.err
	})
}

// backgroundImage is an inline style showing url behind an image while it
// loads. url is a data URL or a delivery URL, both free of quotes.
func backgroundImage(url string) string {
	if url == "" {
		return ""
	}
	return "background-image:url('" + url + "')"
}
