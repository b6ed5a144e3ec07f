package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
)

type stubSource struct {
	catalog catalog.Catalog
}

func (s stubSource) Load(context.Context) (catalog.Catalog, error) {
	return s.catalog, nil
}

func newHandler(t *testing.T, records int) http.Handler {
	t.Helper()
	list := make([]catalog.ImageRecord, records)
	for i := range list {
		list[i] = catalog.ImageRecord{ID: "owls/p" + string(rune('a'+i)), Width: 100, Height: 100, Format: "jpg"}
	}
	mount, err := New().Mount(module.Dependencies{
		Gallery: stubSource{catalog: catalog.New(list)},
		CDN:     imagecdn.New("https://cdn.example/mirror"),
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept-Language", "en")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLandingPage(t *testing.T) {
	t.Parallel()

	rr := serve(newHandler(t, 8), http.MethodGet, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Find("title").Text(); got != "HUST Red Owls" {
		t.Fatalf("title = %q", got)
	}
	if got := doc.Find(".media-teaser a").Length(); got != TeaserSize {
		t.Fatalf("teaser = %d, want %d", got, TeaserSize)
	}
	if got := doc.Find(".media-teaser img").First().AttrOr("src", ""); got != "https://cdn.example/mirror/owls/pa.jpg" {
		t.Fatalf("flat mirror src = %q", got)
	}
	if doc.Find("form.contact-form").Length() != 1 {
		t.Fatalf("missing contact form")
	}
	if doc.Find(".form-status").Length() != 0 {
		t.Fatalf("unexpected sent status")
	}
}

func TestLandingShowsSentStatus(t *testing.T) {
	t.Parallel()

	rr := serve(newHandler(t, 0), http.MethodGet, "/?sent=1")
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Find(`.form-status[role="status"]`).Length() != 1 {
		t.Fatalf("missing sent status")
	}
	if doc.Find(".media-teaser").Length() != 0 {
		t.Fatalf("empty catalog should hide the teaser strip")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := serve(newHandler(t, 0), http.MethodGet, "/up")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(newHandler(t, 0), http.MethodGet, "/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Find(".error-state").Length() != 1 {
		t.Fatalf("missing error page")
	}
}

func TestLandingTeaserPinsGallerySession(t *testing.T) {
	t.Parallel()

	sessions := catalog.NewSessions(0, 0)
	mount, err := New().Mount(module.Dependencies{
		Gallery:  stubSource{catalog: catalog.New([]catalog.ImageRecord{{ID: "owls/a", Width: 100, Height: 100, Format: "jpg"}})},
		Sessions: sessions,
		CDN:      imagecdn.New("https://cdn.example/mirror"),
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := serve(mount.Handler, http.MethodGet, "/")
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	href := doc.Find(".media-teaser a").First().AttrOr("href", "")
	u, err := url.Parse(href)
	if err != nil || u.Path != "/gallery/photos/0" {
		t.Fatalf("teaser href = %q", href)
	}
	session := u.Query().Get("s")
	if _, ok := sessions.Get(session); !ok {
		t.Fatalf("teaser session %q not stored", session)
	}
	if got := doc.Find("#media a.button").AttrOr("href", ""); got != "/gallery/?s="+session {
		t.Fatalf("gallery call to action = %q", got)
	}
}
