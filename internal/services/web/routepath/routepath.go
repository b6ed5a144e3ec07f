// Package routepath holds the site's URL paths.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"

	StaticPrefix = "/static/"

	GalleryPrefix          = "/gallery/"
	Gallery                = "/gallery/"
	GalleryPhotoPattern    = "/gallery/photos/{index}"
	GalleryPhotoKeyPattern = "/gallery/photos/{index}/key"

	ContactPrefix = "/contact/"
	Contact       = "/contact/"

	PreferencesPrefix = "/preferences/"
	PreferencesTheme  = "/preferences/theme"
	PreferencesLang   = "/preferences/lang"

	// ContactAnchor is the landing page section id of the contact form.
	ContactAnchor = "contact"
)

// SessionParam carries the gallery session id that pins one catalog
// snapshot across grid and lightbox requests.
const SessionParam = "s"

// GalleryGrid returns the grid path, bound to session when non-empty.
func GalleryGrid(session string) string {
	return withQuery(Gallery, session, "")
}

// GalleryPhoto returns the lightbox path for photo i.
func GalleryPhoto(i int, session string) string {
	return withQuery(galleryPhotoPath(i), session, "")
}

// GalleryPhotoKey returns the keyboard endpoint for photo i, with key set
// when non-empty.
func GalleryPhotoKey(i int, session, key string) string {
	return withQuery(galleryPhotoPath(i)+"/key", session, key)
}

func galleryPhotoPath(i int) string {
	return "/gallery/photos/" + strconv.Itoa(i)
}

func withQuery(path, session, key string) string {
	values := url.Values{}
	if key != "" {
		values.Set("key", key)
	}
	if session != "" {
		values.Set(SessionParam, session)
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// ThemePreference returns the theme switch URL.
func ThemePreference(mode, returnTo string) string {
	return PreferencesTheme + "?" + url.Values{"mode": {mode}, "return": {SafeReturn(returnTo)}}.Encode()
}

// LanguagePreference returns the language switch URL.
func LanguagePreference(lang, returnTo string) string {
	return PreferencesLang + "?" + url.Values{"lang": {lang}, "return": {SafeReturn(returnTo)}}.Encode()
}

// ContactSent is where a successful contact submission lands.
func ContactSent() string {
	return Root + "?sent=1#" + ContactAnchor
}

// SafeReturn keeps a return target on this site. Anything that is not a
// plain absolute path, including scheme-relative and backslash forms,
// becomes Root.
func SafeReturn(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return Root
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.User != nil {
		return Root
	}
	target := parsed.RequestURI()
	if parsed.Fragment != "" {
		target += "#" + parsed.EscapedFragment()
	}
	return target
}
