// Package hroctl builds the operator command line for the club site.
package hroctl

import (
	"context"
	"errors"
	"log"

	entrypoint "github.com/hustredowls/redowls.club/internal/platform/cmd"
	"github.com/hustredowls/redowls.club/internal/services/contact"
	contactsqlite "github.com/hustredowls/redowls.club/internal/services/contact/storage/sqlite"
	galleryapp "github.com/hustredowls/redowls.club/internal/services/gallery/app"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/spf13/cobra"
)

// Config holds the settings shared with the web command.
type Config struct {
	ContactDBPath string `env:"HRO_CONTACT_DB_PATH" envDefault:"data/contact.db"`

	Gallery galleryapp.Config
}

// Inbox reads stored contact messages.
type Inbox interface {
	contact.Store
	Close() error
}

// Deps opens the backends commands read from.
type Deps struct {
	LoadConfig  func() (Config, error)
	OpenCatalog func(ctx context.Context, cfg Config) (catalog.Source, error)
	OpenInbox   func(ctx context.Context, cfg Config) (Inbox, error)
}

// DefaultDeps reads configuration from the environment and opens the real
// media host and SQLite inbox.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: func() (Config, error) {
			var cfg Config
			if err := entrypoint.ParseConfig(&cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		},
		OpenCatalog: func(_ context.Context, cfg Config) (catalog.Source, error) {
			gallery, err := galleryapp.New(cfg.Gallery, log.Default())
			if err != nil {
				return nil, err
			}
			if gallery.Loader == nil {
				return nil, errors.New("media host is not configured")
			}
			return gallery.Loader, nil
		},
		OpenInbox: func(ctx context.Context, cfg Config) (Inbox, error) {
			return contactsqlite.Open(ctx, cfg.ContactDBPath)
		},
	}
}

// NewRootCmd builds the hroctl command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hroctl",
		Short: "Operate the HUST Red Owls club site",
		Long: `hroctl inspects the data behind the club site.

It reads the same environment as the web server, including .env in the
working directory.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newCatalogCmd(deps))
	cmd.AddCommand(newInboxCmd(deps))
	return cmd
}
