// Package app wires the gallery catalog pipeline from configuration.
package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/gallery/mediahost"
	"github.com/hustredowls/redowls.club/internal/services/gallery/placeholder"
)

// FlatFetchBytes caps original downloads when placeholders are rendered
// locally from a flat mirror.
const FlatFetchBytes = 32 << 20

// Config holds the gallery settings shared by the web server and hroctl.
type Config struct {
	CloudName    string        `env:"HRO_CLOUDINARY_CLOUD_NAME"`
	APIKey       string        `env:"HRO_CLOUDINARY_API_KEY"`
	APISecret    string        `env:"HRO_CLOUDINARY_API_SECRET"`
	Folder       string        `env:"HRO_CLOUDINARY_FOLDER"`
	APIBaseURL   string        `env:"HRO_CLOUDINARY_API_BASE_URL" envDefault:"https://api.cloudinary.com"`
	DeliveryHost string        `env:"HRO_CLOUDINARY_DELIVERY_HOST" envDefault:"https://res.cloudinary.com"`
	AssetBaseURL string        `env:"HRO_ASSET_BASE_URL"`
	MaxResults   int           `env:"HRO_GALLERY_MAX_RESULTS" envDefault:"200"`
	CacheTTL     time.Duration `env:"HRO_GALLERY_CACHE_TTL" envDefault:"0s"`
	// Placeholders enables blurred preview derivation during loads.
	Placeholders bool `env:"HRO_GALLERY_PLACEHOLDERS" envDefault:"true"`
	// SessionTTL is how long an idle viewer keeps its catalog snapshot.
	SessionTTL  time.Duration `env:"HRO_GALLERY_SESSION_TTL" envDefault:"30m"`
	MaxSessions int           `env:"HRO_GALLERY_MAX_SESSIONS" envDefault:"64"`
}

// CDN returns the delivery CDN. HRO_ASSET_BASE_URL wins over the cloud
// delivery base.
func (c Config) CDN() imagecdn.CDN {
	if base := strings.TrimSpace(c.AssetBaseURL); base != "" {
		return imagecdn.New(base)
	}
	return imagecdn.New(imagecdn.BaseURL(c.DeliveryHost, c.CloudName))
}

// Gallery is the wired catalog pipeline.
type Gallery struct {
	// Source serves catalogs to request handlers, cached when CacheTTL > 0.
	// It is nil when the media host is not configured.
	Source catalog.Source
	// Loader always loads fresh; nil when the media host is not configured.
	Loader *catalog.Loader
	// Sessions pins snapshots to viewer sessions. It is set even when the
	// media host is not configured.
	Sessions *catalog.Sessions
	CDN      imagecdn.CDN
}

// New builds the gallery pipeline. Missing media host credentials are not
// an error: the gallery renders empty and a warning is logged.
func New(cfg Config, logger *log.Logger) (Gallery, error) {
	if logger == nil {
		logger = log.Default()
	}
	cdn := cfg.CDN()
	sessions := catalog.NewSessions(cfg.SessionTTL, cfg.MaxSessions)
	maxFetch := int64(mediahost.DefaultMaxFetchBytes)
	if !cdn.Transforms() {
		maxFetch = FlatFetchBytes
	}
	host, err := mediahost.New(mediahost.Config{
		APIBaseURL:    cfg.APIBaseURL,
		CloudName:     cfg.CloudName,
		APIKey:        cfg.APIKey,
		APISecret:     cfg.APISecret,
		MaxFetchBytes: maxFetch,
	})
	if errors.Is(err, mediahost.ErrNotConfigured) {
		logger.Printf("gallery media host not configured; gallery renders empty")
		return Gallery{Sessions: sessions, CDN: cdn}, nil
	}
	if err != nil {
		return Gallery{}, fmt.Errorf("media host: %w", err)
	}

	var deriver catalog.PlaceholderDeriver
	if cfg.Placeholders {
		deriver = placeholder.New(cdn, host)
	}
	loader, err := catalog.NewLoader(catalog.Config{
		Folder:     cfg.Folder,
		MaxResults: cfg.MaxResults,
	}, host, deriver, logger)
	if err != nil {
		return Gallery{}, fmt.Errorf("gallery loader: %w", err)
	}

	var source catalog.Source = loader
	if cfg.CacheTTL > 0 {
		source = catalog.NewSnapshotCache(loader, cfg.CacheTTL)
	}
	return Gallery{Source: source, Loader: loader, Sessions: sessions, CDN: cdn}, nil
}
