package mediahost

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := New(Config{
		APIBaseURL:      server.URL,
		CloudName:       "hro",
		APIKey:          "key",
		APISecret:       "secret",
		HTTPClient:      server.Client(),
		InitialInterval: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewRequiresCredentials(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{CloudName: "hro"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("New() error = %v, want %v", err, ErrNotConfigured)
	}
}

func TestSearchSendsFolderQuery(t *testing.T) {
	t.Parallel()

	var got searchPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1_1/hro/resources/search" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			t.Errorf("basic auth = (%q, %q, %v)", user, pass, ok)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count":2,"resources":[
			{"public_id":"hro/b","format":"jpg","width":1600,"height":900,"created_at":"2024-05-02T10:00:00Z"},
			{"public_id":"hro/a","format":"png","width":800,"height":600,"created_at":"2024-05-01T10:00:00Z","context":{"custom":{"alt":"team"}}}
		]}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, server).Search(context.Background(), FolderQuery("/hro/", 200))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got.Expression != "folder:hro/*" {
		t.Fatalf("expression = %q", got.Expression)
	}
	if len(got.SortBy) != 1 || got.SortBy[0]["created_at"] != "desc" {
		t.Fatalf("sort_by = %v", got.SortBy)
	}
	if len(got.WithField) != 1 || got.WithField[0] != "context" || got.MaxResults != 200 {
		t.Fatalf("payload = %+v", got)
	}
	if len(result.Assets) != 2 || result.Assets[0].PublicID != "hro/b" || result.Assets[1].Width != 800 {
		t.Fatalf("assets = %+v", result.Assets)
	}
	if result.Truncated() {
		t.Fatal("Truncated() = true, want false")
	}
}

func TestSearchClampsMaxResults(t *testing.T) {
	t.Parallel()

	if got := FolderQuery("hro", 10_000).payload().MaxResults; got != MaxSearchResults {
		t.Fatalf("max_results = %d, want %d", got, MaxSearchResults)
	}
}

func TestSearchRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"total_count":0,"resources":[]}`))
	}))
	defer server.Close()

	if _, err := newTestClient(t, server).Search(context.Background(), FolderQuery("hro", 10)); err != nil {
		t.Fatalf("search: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
}

func TestSearchGivesUpAfterMaxTries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(t, server).Search(context.Background(), FolderQuery("hro", 10))
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("error = %v, want status 502", err)
	}
	if got := calls.Load(); got != defaultMaxTries {
		t.Fatalf("calls = %d, want %d", got, defaultMaxTries)
	}
}

func TestSearchDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(t, server).Search(context.Background(), FolderQuery("hro", 10))
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("error = %v, want status 401", err)
	}
	if !strings.Contains(err.Error(), "bad credentials") {
		t.Fatalf("error = %q, want body excerpt", err.Error())
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestSearchStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestClient(t, server).Search(ctx, FolderQuery("hro", 10)); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestFetchReturnsPayloadAndContentType(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	}))
	defer server.Close()

	data, contentType, err := newTestClient(t, server).Fetch(context.Background(), server.URL+"/tiny.jpg")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if contentType != "image/jpeg" || len(data) != 3 {
		t.Fatalf("Fetch() = (%d bytes, %q)", len(data), contentType)
	}
}

func TestFetchRejectsOversizedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, DefaultMaxFetchBytes+10))
	}))
	defer server.Close()

	if _, _, err := newTestClient(t, server).Fetch(context.Background(), server.URL); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("error = %v, want %v", err, ErrPayloadTooLarge)
	}
}

func TestFetchNotFoundIsPermanent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, _, err := newTestClient(t, server).Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}
