// Package modules lists the web feature modules.
package modules

import (
	"github.com/hustredowls/redowls.club/internal/services/web/module"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/contact"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/gallery"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/preferences"
	"github.com/hustredowls/redowls.club/internal/services/web/modules/public"
)

// Default returns every module the site mounts, root module first.
func Default() []module.Module {
	return []module.Module{
		public.New(),
		gallery.New(),
		contact.New(),
		preferences.New(),
	}
}
