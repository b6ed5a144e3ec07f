// Package imagecdn builds delivery URLs for hosted gallery images.
//
// A delivery base whose path ends in /image/upload is treated as a Cloudinary
// base and receives transformation segments. Any other base is a flat mirror
// that serves originals only, so transformations are dropped.
package imagecdn

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const uploadPathSuffix = "/image/upload"

var (
	// ErrAssetIDRequired reports a request without an asset identifier.
	ErrAssetIDRequired = errors.New("asset id is required")
	// ErrExtensionRequired reports a request without a file extension.
	ErrExtensionRequired = errors.New("asset extension is required")
)

// Mode identifies how a CDN treats transformation requests.
type Mode string

const (
	// ModeFlat serves originals and ignores transformations.
	ModeFlat Mode = "flat"
	// ModeTransform renders transformation segments into URLs.
	ModeTransform Mode = "transform"
)

// Delivery describes the rendition requested from the CDN.
type Delivery struct {
	// WidthPX scales the image to this width, preserving aspect ratio.
	WidthPX int
	// Blur applies a blur effect with the given strength (1-2000).
	Blur int
	// Quality sets the encoder quality (1-100).
	Quality int
	// Format forces the delivered encoding, for example "jpg".
	Format string
}

// Request identifies one asset rendition.
type Request struct {
	AssetID   string
	Extension string
	Delivery  *Delivery
}

// CDN resolves delivery URLs against one base URL.
type CDN struct {
	base string
	mode Mode
}

// New builds a CDN for the given delivery base URL.
func New(baseURL string) CDN {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	mode := ModeFlat
	if parsed, err := url.Parse(base); err == nil && strings.HasSuffix(parsed.Path, uploadPathSuffix) {
		mode = ModeTransform
	}
	return CDN{base: base, mode: mode}
}

// BaseURL returns the Cloudinary delivery base for a cloud account:
// <host>/<cloud>/image/upload.
func BaseURL(host, cloudName string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	cloudName = strings.Trim(strings.TrimSpace(cloudName), "/")
	if cloudName == "" {
		return host
	}
	return host + "/" + url.PathEscape(cloudName) + uploadPathSuffix
}

// Mode reports whether the CDN renders transformations.
func (c CDN) Mode() Mode {
	return c.mode
}

// Transforms reports whether the CDN renders transformations.
func (c CDN) Transforms() bool {
	return c.mode == ModeTransform
}

// URL resolves the delivery URL for a request. The result depends only on
// the base URL and the request fields.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimPrefix(strings.TrimSpace(req.Extension), ".")
	if ext == "" {
		return "", ErrExtensionRequired
	}

	var b strings.Builder
	b.WriteString(c.base)
	if c.mode == ModeTransform {
		if spec := TransformSpec(req.Delivery); spec != "" {
			b.WriteString("/")
			b.WriteString(spec)
		}
	}
	b.WriteString("/")
	b.WriteString(escapeAssetPath(assetID))
	b.WriteString(".")
	b.WriteString(ext)
	return b.String(), nil
}

// TransformSpec renders a delivery as a transformation segment, for example
// "c_scale,w_200,e_blur:1000". A nil or empty delivery renders "".
func TransformSpec(d *Delivery) string {
	if d == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	if d.WidthPX > 0 {
		parts = append(parts, "c_scale", "w_"+strconv.Itoa(d.WidthPX))
	}
	if d.Blur > 0 {
		parts = append(parts, "e_blur:"+strconv.Itoa(d.Blur))
	}
	if d.Quality > 0 {
		parts = append(parts, "q_"+strconv.Itoa(d.Quality))
	}
	if format := strings.TrimPrefix(strings.TrimSpace(d.Format), "."); format != "" {
		parts = append(parts, "f_"+format)
	}
	return strings.Join(parts, ",")
}

// Public ids may contain folder separators; each segment is escaped on its own.
func escapeAssetPath(assetID string) string {
	segments := strings.Split(assetID, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
