// Package placeholder derives the tiny blurred previews shown while gallery
// photos load.
package placeholder

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
)

const (
	// WidthPX is the placeholder width.
	WidthPX = 8
	// BlurStrength is the CDN blur effect strength.
	BlurStrength = 1000
	// Quality is the JPEG quality of a placeholder.
	Quality = 70

	// localSigma approximates the CDN blur on an 8px image.
	localSigma = 2.0
)

// Delivery is the rendition requested for placeholders.
var Delivery = imagecdn.Delivery{
	WidthPX: WidthPX,
	Blur:    BlurStrength,
	Quality: Quality,
	Format:  "jpg",
}

// Fetcher downloads a delivery URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// New picks CDN derivation when the CDN renders transformations and local
// derivation otherwise.
func New(cdn imagecdn.CDN, fetcher Fetcher) catalog.PlaceholderDeriver {
	if cdn.Transforms() {
		return CDNDeriver{CDN: cdn, Fetcher: fetcher}
	}
	return LocalDeriver{CDN: cdn, Fetcher: fetcher}
}

// CDNDeriver asks the CDN for a pre-rendered tiny blurred rendition.
type CDNDeriver struct {
	CDN     imagecdn.CDN
	Fetcher Fetcher
}

// Derive fetches the rendition and returns it as a data URL.
func (d CDNDeriver) Derive(ctx context.Context, record catalog.ImageRecord) (string, error) {
	if d.Fetcher == nil {
		return "", errors.New("placeholder fetcher is required")
	}
	delivery := Delivery
	url, err := d.CDN.URL(imagecdn.Request{AssetID: record.ID, Extension: record.Format, Delivery: &delivery})
	if err != nil {
		return "", fmt.Errorf("placeholder url: %w", err)
	}
	data, contentType, err := d.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch placeholder %s: %w", record.ID, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("fetch placeholder %s: empty payload", record.ID)
	}
	return DataURL(contentType, data), nil
}

// LocalDeriver downloads the original and shrinks and blurs it in-process,
// for CDNs that serve originals only.
type LocalDeriver struct {
	CDN     imagecdn.CDN
	Fetcher Fetcher
}

// Derive fetches the original, renders the placeholder and returns it as a
// JPEG data URL.
func (d LocalDeriver) Derive(ctx context.Context, record catalog.ImageRecord) (string, error) {
	if d.Fetcher == nil {
		return "", errors.New("placeholder fetcher is required")
	}
	url, err := d.CDN.URL(imagecdn.Request{AssetID: record.ID, Extension: record.Format})
	if err != nil {
		return "", fmt.Errorf("placeholder url: %w", err)
	}
	data, _, err := d.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch original %s: %w", record.ID, err)
	}
	encoded, err := Render(data)
	if err != nil {
		return "", fmt.Errorf("render placeholder %s: %w", record.ID, err)
	}
	return DataURL("image/jpeg", encoded), nil
}

// Render decodes an image and returns the 8px wide blurred JPEG preview.
func Render(original []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(original), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	small := imaging.Resize(img, WidthPX, 0, imaging.Lanczos)
	blurred := imaging.Blur(small, localSigma)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, blurred, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL encodes data as a base64 data URL. Content type parameters are
// dropped; an empty type becomes application/octet-stream.
func DataURL(contentType string, data []byte) string {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
