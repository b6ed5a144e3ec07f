// Package web hosts the club site's HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hustredowls/redowls.club/internal/platform/timeouts"
	"github.com/hustredowls/redowls.club/internal/services/gallery/catalog"
	"github.com/hustredowls/redowls.club/internal/services/web/app"
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/modules"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/httpx"
	"github.com/hustredowls/redowls.club/internal/services/web/platform/observability"
	"github.com/hustredowls/redowls.club/internal/services/web/routepath"
	"github.com/hustredowls/redowls.club/internal/services/web/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	Dependencies module.Dependencies
	// Modules overrides the default module set.
	Modules []module.Module
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	deps       module.Dependencies
}

// NewHandler composes the modules, static assets and middleware into the
// root handler.
func NewHandler(deps module.Dependencies, features []module.Module) (http.Handler, error) {
	if features == nil {
		features = modules.Default()
	}
	if deps.Sessions == nil {
		deps.Sessions = catalog.NewSessions(0, 0)
	}
	mux, err := app.Composer{}.Compose(deps, features)
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(deps.LoggerOrDefault()),
		httpx.SecurityHeaders(),
	)
	return otelhttp.NewHandler(handler, "web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

// NewServer builds a server listening on cfg.HTTPAddr.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg.Dependencies, cfg.Modules)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		deps: cfg.Dependencies,
	}, nil
}

// ListenAndServe runs the server until ctx ends, then drains in-flight
// requests within the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.deps.LoggerOrDefault().Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
