// Package gallery serves the photo grid and lightbox.
package gallery

import (
	"net/http"

	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
)

// Module provides the gallery routes.
type Module struct{}

// New returns the gallery module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "gallery" }

// Mount registers the grid, lightbox and keyboard routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := newHandlers(deps)
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Gallery+"{$}", h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.GalleryPhotoPattern, h.handlePhoto)
	mux.HandleFunc(http.MethodGet+" "+routepath.GalleryPhotoKeyPattern, h.handleKey)
	mux.HandleFunc(routepath.GalleryPrefix+"{rest...}", h.handleNotFound)
	return module.Mount{Prefix: routepath.GalleryPrefix, Handler: mux}, nil
}
