// Package app composes web modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hustredowls/redowls.club/internal/services/web/module"
)

// Composer mounts modules on a shared mux.
type Composer struct{}

// Compose mounts every module under its prefix. Prefixes must be unique
// and look like "/name/" (or "/" for the root module).
func (Composer) Compose(deps module.Dependencies, modules []module.Module) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string, len(modules))
	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(deps)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if err := validatePrefix(prefix); err != nil {
			return nil, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}
	return root, nil
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("prefix is required")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
