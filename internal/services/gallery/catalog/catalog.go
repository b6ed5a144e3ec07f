// Package catalog builds the ordered photo catalog shown by the gallery.
package catalog

import "time"

// ImageRecord is one gallery photo.
type ImageRecord struct {
	// ID is the host public id, used to build delivery URLs.
	ID     string
	Width  int
	Height int
	// Format is the file extension, for example "jpg".
	Format string
	// SequenceIndex is the zero-based position in the catalog it was loaded
	// into. It is not stable across loads.
	SequenceIndex int
	// Placeholder is a data URL for a tiny blurred preview, empty when none
	// could be derived.
	Placeholder string
	// Alt is the caption stored with the asset, if any.
	Alt       string
	CreatedAt time.Time
}

// HasPlaceholder reports whether a blurred preview is attached.
func (r ImageRecord) HasPlaceholder() bool {
	return r.Placeholder != ""
}

// Catalog is an immutable ordered list of records, newest first.
type Catalog struct {
	records []ImageRecord
}

// New builds a catalog from records in display order. Sequence indices are
// reassigned from position.
func New(records []ImageRecord) Catalog {
	if len(records) == 0 {
		return Catalog{}
	}
	out := make([]ImageRecord, len(records))
	copy(out, records)
	for i := range out {
		out[i].SequenceIndex = i
	}
	return Catalog{records: out}
}

// Len returns the number of records.
func (c Catalog) Len() int {
	return len(c.records)
}

// Empty reports whether the catalog has no records.
func (c Catalog) Empty() bool {
	return len(c.records) == 0
}

// Valid reports whether i addresses a record.
func (c Catalog) Valid(i int) bool {
	return i >= 0 && i < len(c.records)
}

// At returns the record at i.
func (c Catalog) At(i int) (ImageRecord, bool) {
	if !c.Valid(i) {
		return ImageRecord{}, false
	}
	return c.records[i], true
}

// Records returns a copy of every record.
func (c Catalog) Records() []ImageRecord {
	out := make([]ImageRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c Catalog) withPlaceholders(placeholders []string) Catalog {
	records := c.Records()
	for i := range records {
		if i < len(placeholders) {
			records[i].Placeholder = placeholders[i]
		}
	}
	return Catalog{records: records}
}
