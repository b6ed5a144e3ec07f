package mediahost

import (
	"strings"
	"time"
)

// SearchQuery is one search API request.
type SearchQuery struct {
	Expression string
	// SortField is sorted descending; empty means created_at.
	SortField  string
	WithFields []string
	MaxResults int
	NextCursor string
}

// FolderQuery lists a folder's assets newest first with their context
// metadata, the query the gallery runs.
func FolderQuery(folder string, maxResults int) SearchQuery {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	return SearchQuery{
		Expression: "folder:" + folder + "/*",
		SortField:  "created_at",
		WithFields: []string{"context"},
		MaxResults: maxResults,
	}
}

type searchPayload struct {
	Expression string              `json:"expression"`
	SortBy     []map[string]string `json:"sort_by"`
	WithField  []string            `json:"with_field,omitempty"`
	MaxResults int                 `json:"max_results,omitempty"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func (q SearchQuery) payload() searchPayload {
	field := strings.TrimSpace(q.SortField)
	if field == "" {
		field = "created_at"
	}
	maxResults := q.MaxResults
	if maxResults > MaxSearchResults {
		maxResults = MaxSearchResults
	}
	return searchPayload{
		Expression: q.Expression,
		SortBy:     []map[string]string{{field: "desc"}},
		WithField:  q.WithFields,
		MaxResults: maxResults,
		NextCursor: q.NextCursor,
	}
}

// SearchResult is the decoded search response.
type SearchResult struct {
	TotalCount int     `json:"total_count"`
	NextCursor string  `json:"next_cursor"`
	Assets     []Asset `json:"resources"`
}

// Asset is one search hit as reported by the host. Nothing about it is
// validated yet.
type Asset struct {
	PublicID  string         `json:"public_id"`
	Format    string         `json:"format"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	CreatedAt time.Time      `json:"created_at"`
	Context   map[string]any `json:"context"`
}

// Truncated reports whether the host holds more matches than were returned.
func (r SearchResult) Truncated() bool {
	return r.NextCursor != "" || r.TotalCount > len(r.Assets)
}
