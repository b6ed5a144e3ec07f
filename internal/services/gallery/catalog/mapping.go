package catalog

import (
	"fmt"
	"strings"

	"github.com/hustredowls/redowls.club/internal/services/gallery/mediahost"
)

// Rejection explains why a host asset was left out of the catalog.
type Rejection struct {
	Position int
	PublicID string
	Reason   string
}

func (r Rejection) String() string {
	return fmt.Sprintf("position=%d public_id=%q reason=%s", r.Position, r.PublicID, r.Reason)
}

// MapAssets converts host assets into records in host order. Assets without
// an id, with non-positive dimensions or with a missing or malformed format
// are rejected, and sequence indices stay contiguous over the rest.
func MapAssets(assets []mediahost.Asset) ([]ImageRecord, []Rejection) {
	records := make([]ImageRecord, 0, len(assets))
	var rejected []Rejection
	for position, asset := range assets {
		id := strings.TrimSpace(asset.PublicID)
		format := strings.ToLower(strings.TrimSpace(asset.Format))
		reason := ""
		switch {
		case id == "":
			reason = "missing public id"
		case asset.Width <= 0 || asset.Height <= 0:
			reason = fmt.Sprintf("invalid dimensions %dx%d", asset.Width, asset.Height)
		case !validFormat(format):
			reason = fmt.Sprintf("invalid format %q", asset.Format)
		}
		if reason != "" {
			rejected = append(rejected, Rejection{Position: position, PublicID: id, Reason: reason})
			continue
		}
		records = append(records, ImageRecord{
			ID:            id,
			Width:         asset.Width,
			Height:        asset.Height,
			Format:        format,
			SequenceIndex: len(records),
			Alt:           altText(asset.Context),
			CreatedAt:     asset.CreatedAt,
		})
	}
	return records, rejected
}

func validFormat(format string) bool {
	if format == "" {
		return false
	}
	for _, r := range format {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// altText reads context.custom.alt, falling back to context.custom.caption.
func altText(context map[string]any) string {
	custom, ok := context["custom"].(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"alt", "caption"} {
		if value, ok := custom[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
