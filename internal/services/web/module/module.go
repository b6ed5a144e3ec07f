// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/hustredowls/redowls.club/internal/platform/assets/imagecdn"
	"github.com/hustredowls/redowls.club/internal/services/contact"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/gallery/viewer"
	"github.com/hustredowls/redowls.club/internal/services/roster"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/requestmeta"
)

// ContactService accepts contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, submission contact.Submission) (contact.Message, error)
}

// Dependencies carries the shared services modules mount against.
type Dependencies struct {
	// Gallery supplies catalog snapshots. A nil source renders an empty gallery.
	Gallery catalog.Source
	// Sessions pins catalog snapshots to viewer sessions. NewHandler
	// supplies a default store when nil.
	Sessions *catalog.Sessions
	CDN      imagecdn.CDN
	Strip    viewer.PreviewStrip
	Contact  ContactService
	// Roster fills the leaders section; empty hides it.
	Roster roster.Roster

	RequestMeta requestmeta.SchemePolicy
	Logger      *log.Logger
	Now         func() time.Time
}

// LoggerOrDefault returns the configured logger or the standard one.
func (d Dependencies) LoggerOrDefault() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Clock returns the configured clock or time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a feature area mounted under one prefix.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}
