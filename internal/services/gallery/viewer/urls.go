package viewer

import (
	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
)

const (
	// ThumbnailWidthPX is the rendered width of grid and strip thumbnails.
	ThumbnailWidthPX = 200
	// BackdropBlur is the blur strength of the lightbox backdrop.
	BackdropBlur = 1000
)

// PhotoURLs are the delivery URLs used to render one record.
type PhotoURLs struct {
	Display   string
	Backdrop  string
	Thumbnail string
}

// URLs builds the display, backdrop and thumbnail URLs for a record.
func URLs(cdn imagecdn.CDN, record catalog.ImageRecord) (PhotoURLs, error) {
	build := func(d imagecdn.Delivery) (string, error) {
		return cdn.URL(imagecdn.Request{AssetID: record.ID, Extension: record.Format, Delivery: &d})
	}
	display, err := build(imagecdn.Delivery{WidthPX: record.Width})
	if err != nil {
		return PhotoURLs{}, err
	}
	backdrop, err := build(imagecdn.Delivery{WidthPX: record.Width, Blur: BackdropBlur})
	if err != nil {
		return PhotoURLs{}, err
	}
	thumbnail, err := build(imagecdn.Delivery{WidthPX: ThumbnailWidthPX})
	if err != nil {
		return PhotoURLs{}, err
	}
	return PhotoURLs{Display: display, Backdrop: backdrop, Thumbnail: thumbnail}, nil
}
