package gallery

import (
	"context"
	"log"

	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/gallery/viewer"
	webtemplates "github.com/hustredowls/redowls.club/internal/services/web/templates"
)

// Photos pairs a catalog snapshot with its delivery URLs.
type Photos struct {
	Catalog catalog.Catalog
	URLs    []viewer.PhotoURLs
	// Session is the viewer session holding Catalog; empty when unbound.
	Session string
}

// BuildPhotos resolves delivery URLs for every record. A record whose URLs
// cannot be built keeps empty URLs and is logged.
func BuildPhotos(cdn imagecdn.CDN, cat catalog.Catalog, logger *log.Logger) Photos {
	urls := make([]viewer.PhotoURLs, cat.Len())
	for i, record := range cat.Records() {
		built, err := viewer.URLs(cdn, record)
		if err != nil {
			logger.Printf("gallery url failed id=%s index=%d err=%v", record.ID, i, err)
			continue
		}
		urls[i] = built
	}
	return Photos{Catalog: cat, URLs: urls}
}

// LoadPhotos returns the snapshot pinned to session. An unknown or expired
// session loads a fresh catalog and pins it under a new session id; empty
// catalogs are not pinned. A nil sessions store disables pinning.
func LoadPhotos(ctx context.Context, sessions *catalog.Sessions, source catalog.Source, cdn imagecdn.CDN, session string, logger *log.Logger) Photos {
	if sessions != nil {
		if cat, ok := sessions.Get(session); ok {
			photos := BuildPhotos(cdn, cat, logger)
			photos.Session = session
			return photos
		}
	}
	cat := catalog.LoadOrEmpty(ctx, source, logger)
	photos := BuildPhotos(cdn, cat, logger)
	if sessions != nil && !cat.Empty() {
		photos.Session = sessions.Put(cat)
	}
	return photos
}

// GridItems returns up to limit tiles from the start of the catalog; a
// non-positive limit returns them all.
func (p Photos) GridItems(limit int) []webtemplates.GridItem {
	records := p.Catalog.Records()
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	items := make([]webtemplates.GridItem, 0, len(records))
	for i, record := range records {
		items = append(items, webtemplates.GridItem{
			Index:       record.SequenceIndex,
			Total:       p.Catalog.Len(),
			Thumbnail:   p.URLs[i].Thumbnail,
			Placeholder: record.Placeholder,
			Width:       record.Width,
			Height:      record.Height,
			Alt:         record.Alt,
			Session:     p.Session,
		})
	}
	return items
}

// Lightbox builds the open lightbox for the photo selected by state. The
// bool is false in the grid state.
func (p Photos) Lightbox(state viewer.State, strip viewer.PreviewStrip) (webtemplates.LightboxView, bool) {
	index, open := state.Selected()
	if !open {
		return webtemplates.LightboxView{}, false
	}
	record, ok := p.Catalog.At(index)
	if !ok {
		return webtemplates.LightboxView{}, false
	}
	n := p.Catalog.Len()
	return webtemplates.LightboxView{
		Index:           index,
		Total:           n,
		Display:         p.URLs[index].Display,
		Backdrop:        p.URLs[index].Backdrop,
		Placeholder:     record.Placeholder,
		Width:           record.Width,
		Height:          record.Height,
		Alt:             record.Alt,
		HasPrevious:     state.HasPrevious(n),
		HasNext:         state.HasNext(n),
		Strip:           p.GridItems(0),
		StripOffset:     strip.OffsetLeft(index),
		StripThumbWidth: strip.ThumbWidthPX,
		Session:         p.Session,
	}, true
}
