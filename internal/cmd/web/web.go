// Package web parses web command flags and launches the club site.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/hustredowls/redowls.club/internal/platform/cmd"
	"github.com/hustredowls/redowls.club/internal/services/contact"
	contactsqlite "github.com/hustredowls/redowls.club/internal/services/contact/storage/sqlite"
	galleryapp "github.com/hustredowls/redowls.club/internal/services/gallery/app"
	"github.com/hustredowls/redowls.club/internal/services/gallery/viewer"
	"github.com/hustredowls/redowls.club/internal/services/roster"
	"github.com/hustredowls/redowls.club/internal/services/web"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/requestmeta"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"HRO_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	ContactDBPath       string `env:"HRO_CONTACT_DB_PATH" envDefault:"data/contact.db"`
	TrustForwardedProto bool   `env:"HRO_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	RosterPath          string `env:"HRO_ROSTER_PATH"`

	Gallery galleryapp.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContactDBPath, "contact-db-path", cfg.ContactDBPath, "Contact inbox SQLite path")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from the fronting proxy")
	fs.StringVar(&cfg.RosterPath, "roster-path", cfg.RosterPath, "YAML file listing club leaders")
	fs.StringVar(&cfg.Gallery.Folder, "gallery-folder", cfg.Gallery.Folder, "Media host folder holding gallery photos")
	fs.DurationVar(&cfg.Gallery.CacheTTL, "gallery-cache-ttl", cfg.Gallery.CacheTTL, "Gallery catalog cache lifetime; 0 loads per request")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		logger := log.Default()

		leaders, err := roster.Load(cfg.RosterPath)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		store, err := contactsqlite.Open(ctx, cfg.ContactDBPath)
		if err != nil {
			return fmt.Errorf("open contact store: %w", err)
		}
		defer store.Close()

		gallery, err := galleryapp.New(cfg.Gallery, logger)
		if err != nil {
			return fmt.Errorf("init gallery: %w", err)
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Dependencies: module.Dependencies{
				Gallery:     gallery.Source,
				Sessions:    gallery.Sessions,
				CDN:         gallery.CDN,
				Strip:       viewer.DefaultPreviewStrip,
				Contact:     contact.NewService(store),
				Roster:      leaders,
				RequestMeta: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
				Logger:      logger,
			},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
