// Package public serves the landing page, health check and not-found page.
package public

import (
	"net/http"

	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount registers the landing page, health check and 404 fallback.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root+"{rest...}", h.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
