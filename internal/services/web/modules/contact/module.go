// Package contact accepts the landing page contact form.
package contact

import (
	"errors"
	"net/http"

	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/httpx"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/weberror"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// Module provides the contact form endpoint.
type Module struct{}

// New returns the contact module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount registers POST /contact/.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Contact == nil {
		return module.Mount{}, errors.New("contact service is required")
	}
	h := handlers{deps: deps, service: deps.Contact, logger: deps.LoggerOrDefault()}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact+"{$}", h.handleSubmit)
	mux.HandleFunc(routepath.Contact+"{$}", httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.ContactPrefix+"{rest...}", func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound)
	})
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
