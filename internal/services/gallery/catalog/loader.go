package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hustredowls/redowls.club/internal/services/gallery/mediahost"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxResults is the number of photos requested per load.
	DefaultMaxResults = 200
	// DefaultConcurrency bounds in-flight placeholder derivations.
	DefaultConcurrency = 16

	tracerName = "github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
)

// Searcher queries the media host.
type Searcher interface {
	Search(ctx context.Context, query mediahost.SearchQuery) (mediahost.SearchResult, error)
}

// PlaceholderDeriver produces the blurred preview payload for one record.
type PlaceholderDeriver interface {
	Derive(ctx context.Context, record ImageRecord) (string, error)
}

// Source is anything that can produce a catalog.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// Config holds the resolved loader settings.
type Config struct {
	// Folder is the host folder holding gallery photos.
	Folder string
	// MaxResults caps one load; the host maximum is mediahost.MaxSearchResults.
	MaxResults int
	// Concurrency bounds placeholder derivations.
	Concurrency int
}

func (c Config) normalized() (Config, error) {
	c.Folder = strings.Trim(strings.TrimSpace(c.Folder), "/")
	if c.Folder == "" {
		return Config{}, errors.New("gallery folder is required")
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MaxResults > mediahost.MaxSearchResults {
		return Config{}, fmt.Errorf("max results %d exceeds host limit %d", c.MaxResults, mediahost.MaxSearchResults)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c, nil
}

// Loader builds catalogs from one host folder.
type Loader struct {
	cfg     Config
	host    Searcher
	deriver PlaceholderDeriver
	logger  *log.Logger
	tracer  trace.Tracer
}

// NewLoader validates cfg and builds a loader. A nil deriver disables
// placeholders; a nil logger uses the standard logger.
func NewLoader(cfg Config, host Searcher, deriver PlaceholderDeriver, logger *log.Logger) (*Loader, error) {
	if host == nil {
		return nil, errors.New("media host is required")
	}
	normalized, err := cfg.normalized()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		cfg:     normalized,
		host:    host,
		deriver: deriver,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// Config returns the normalized loader settings.
func (l *Loader) Config() Config {
	return l.cfg
}

// Load runs the folder query, maps the result and attaches placeholders. A
// failed placeholder leaves only that record without one. Cancellation
// discards all results.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	ctx, span := l.tracer.Start(ctx, "catalog.load", trace.WithAttributes(
		attribute.String("gallery.folder", l.cfg.Folder),
		attribute.Int("gallery.max_results", l.cfg.MaxResults),
	))
	defer span.End()

	result, err := l.search(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return Catalog{}, fmt.Errorf("search folder %s: %w", l.cfg.Folder, err)
	}
	if result.Truncated() {
		l.logger.Printf("gallery catalog truncated folder=%s returned=%d total=%d", l.cfg.Folder, len(result.Assets), result.TotalCount)
	}

	records, rejected := MapAssets(result.Assets)
	for _, rejection := range rejected {
		l.logger.Printf("gallery asset skipped folder=%s %s", l.cfg.Folder, rejection)
	}
	catalog := Catalog{records: records}
	span.SetAttributes(attribute.Int("gallery.records", catalog.Len()), attribute.Int("gallery.rejected", len(rejected)))

	if l.deriver != nil && !catalog.Empty() {
		catalog = catalog.withPlaceholders(l.derivePlaceholders(ctx, catalog))
	}
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		return Catalog{}, err
	}
	return catalog, nil
}

// LoadCatalog is Load with failures collapsed into an empty catalog.
func (l *Loader) LoadCatalog(ctx context.Context) Catalog {
	return LoadOrEmpty(ctx, l, l.logger)
}

// LoadOrEmpty loads from src and returns the empty catalog on any error. The
// error is logged, never returned.
func LoadOrEmpty(ctx context.Context, src Source, logger *log.Logger) Catalog {
	if src == nil {
		return Catalog{}
	}
	catalog, err := src.Load(ctx)
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		if errors.Is(err, context.Canceled) {
			logger.Printf("gallery catalog load cancelled")
		} else {
			logger.Printf("gallery catalog load failed err=%v", err)
		}
		return Catalog{}
	}
	return catalog
}

func (l *Loader) search(ctx context.Context) (mediahost.SearchResult, error) {
	ctx, span := l.tracer.Start(ctx, "catalog.search")
	defer span.End()

	result, err := l.host.Search(ctx, mediahost.FolderQuery(l.cfg.Folder, l.cfg.MaxResults))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return mediahost.SearchResult{}, err
	}
	if len(result.Assets) > l.cfg.MaxResults {
		result.Assets = result.Assets[:l.cfg.MaxResults]
	}
	span.SetAttributes(attribute.Int("gallery.assets", len(result.Assets)), attribute.Int("gallery.total_count", result.TotalCount))
	return result, nil
}

// derivePlaceholders returns one payload per record, in record order.
func (l *Loader) derivePlaceholders(ctx context.Context, catalog Catalog) []string {
	ctx, span := l.tracer.Start(ctx, "catalog.placeholders", trace.WithAttributes(
		attribute.Int("gallery.records", catalog.Len()),
	))
	defer span.End()

	placeholders := make([]string, catalog.Len())
	failures := make([]error, catalog.Len())

	var group errgroup.Group
	group.SetLimit(l.cfg.Concurrency)
	for i, record := range catalog.records {
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			payload, err := l.deriver.Derive(ctx, record)
			if err != nil {
				failures[i] = err
				return nil
			}
			placeholders[i] = payload
			return nil
		})
	}
	_ = group.Wait()

	if ctx.Err() != nil {
		return nil
	}
	failed := 0
	for i, err := range failures {
		if err == nil {
			continue
		}
		failed++
		l.logger.Printf("gallery placeholder failed id=%s index=%d err=%v", catalog.records[i].ID, i, err)
	}
	span.SetAttributes(attribute.Int("gallery.placeholder_failures", failed))
	return placeholders
}
