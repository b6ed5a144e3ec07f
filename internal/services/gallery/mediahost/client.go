// Package mediahost talks to the media hosting service that stores gallery
// photos: its admin search API and its delivery CDN.
package mediahost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultAPIBaseURL is the public admin API endpoint.
	DefaultAPIBaseURL = "https://api.cloudinary.com"
	// MaxSearchResults is the largest page the search API returns.
	MaxSearchResults = 500
	// DefaultMaxFetchBytes caps a fetched delivery payload.
	DefaultMaxFetchBytes = 64 << 10

	defaultMaxTries        = 3
	defaultInitialInterval = 250 * time.Millisecond
	errorBodyLimit         = 4096
)

var (
	// ErrNotConfigured reports a client without cloud name or credentials.
	ErrNotConfigured = errors.New("media host is not configured")
	// ErrPayloadTooLarge reports a fetched payload over the configured cap.
	ErrPayloadTooLarge = errors.New("media payload exceeds size limit")
)

// StatusError is a non-2xx answer from the media host.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("media host status %d", e.StatusCode)
	}
	return fmt.Sprintf("media host status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Config configures a Client.
type Config struct {
	APIBaseURL string
	CloudName  string
	APIKey     string
	APISecret  string
	// HTTPClient overrides the instrumented default client.
	HTTPClient *http.Client
	// MaxTries bounds attempts per request, including the first.
	MaxTries uint
	// InitialInterval is the first retry delay.
	InitialInterval time.Duration
	// MaxFetchBytes caps Fetch bodies; zero means DefaultMaxFetchBytes.
	MaxFetchBytes int64
}

// Client calls the media host. It is safe for concurrent use.
type Client struct {
	searchURL       string
	cloudName       string
	apiKey          string
	apiSecret       string
	http            *http.Client
	maxTries        uint
	initialInterval time.Duration
	maxFetchBytes   int64
}

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	cloudName := strings.TrimSpace(cfg.CloudName)
	apiKey := strings.TrimSpace(cfg.APIKey)
	apiSecret := strings.TrimSpace(cfg.APISecret)
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrNotConfigured
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	maxTries := cfg.MaxTries
	if maxTries == 0 {
		maxTries = defaultMaxTries
	}
	interval := cfg.InitialInterval
	if interval <= 0 {
		interval = defaultInitialInterval
	}
	maxFetch := cfg.MaxFetchBytes
	if maxFetch <= 0 {
		maxFetch = DefaultMaxFetchBytes
	}
	return &Client{
		searchURL:       base + "/v1_1/" + url.PathEscape(cloudName) + "/resources/search",
		cloudName:       cloudName,
		apiKey:          apiKey,
		apiSecret:       apiSecret,
		http:            httpClient,
		maxTries:        maxTries,
		initialInterval: interval,
		maxFetchBytes:   maxFetch,
	}, nil
}

// CloudName returns the configured cloud account.
func (c *Client) CloudName() string {
	return c.cloudName
}

// Search runs one search query. Transient failures are retried.
func (c *Client) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	body, err := json.Marshal(query.payload())
	if err != nil {
		return SearchResult{}, fmt.Errorf("marshal search request: %w", err)
	}

	return backoff.Retry(ctx, func() (SearchResult, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(body))
		if err != nil {
			return SearchResult{}, backoff.Permanent(fmt.Errorf("build search request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth(c.apiKey, c.apiSecret)

		res, err := c.http.Do(req)
		if err != nil {
			return SearchResult{}, c.classify(ctx, fmt.Errorf("search request failed: %w", err))
		}
		defer res.Body.Close()
		if err := checkStatus(res); err != nil {
			return SearchResult{}, err
		}

		var result SearchResult
		if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
			return SearchResult{}, backoff.Permanent(fmt.Errorf("decode search response: %w", err))
		}
		return result, nil
	}, c.retryOptions()...)
}

// Fetch downloads a delivery URL, for example a tiny blurred rendition. It
// returns the body and its content type.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, "", errors.New("fetch url is required")
	}

	type payload struct {
		data        []byte
		contentType string
	}
	got, err := backoff.Retry(ctx, func() (payload, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return payload{}, backoff.Permanent(fmt.Errorf("build fetch request: %w", err))
		}
		res, err := c.http.Do(req)
		if err != nil {
			return payload{}, c.classify(ctx, fmt.Errorf("fetch request failed: %w", err))
		}
		defer res.Body.Close()
		if err := checkStatus(res); err != nil {
			return payload{}, err
		}

		data, err := io.ReadAll(io.LimitReader(res.Body, c.maxFetchBytes+1))
		if err != nil {
			return payload{}, fmt.Errorf("read fetch body: %w", err)
		}
		if int64(len(data)) > c.maxFetchBytes {
			return payload{}, backoff.Permanent(ErrPayloadTooLarge)
		}
		contentType := strings.TrimSpace(res.Header.Get("Content-Type"))
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		return payload{data: data, contentType: contentType}, nil
	}, c.retryOptions()...)
	if err != nil {
		return nil, "", err
	}
	return got.data, got.contentType, nil
}

func (c *Client) retryOptions() []backoff.RetryOption {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	return []backoff.RetryOption{
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(c.maxTries),
	}
}

// A cancelled caller must not be retried.
func (c *Client) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return backoff.Permanent(err)
	}
	return err
}

func checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, errorBodyLimit))
	statusErr := &StatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	if !statusErr.Temporary() {
		return backoff.Permanent(statusErr)
	}
	if res.StatusCode == http.StatusTooManyRequests {
		if seconds, err := strconv.Atoi(strings.TrimSpace(res.Header.Get("Retry-After"))); err == nil && seconds > 0 {
			return backoff.RetryAfter(seconds)
		}
	}
	return statusErr
}
