package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/extpointgo/internal/ctxlog"
)

// Validate performs a parity check between the manifest definitions and the
// registered Go side. It reports manifest packets that reference unknown
// modules or app factories, and warns about modules that will fail at load
// time because they register no load hook.
//
// The result is advisory: the manager still skips bad extensions one at a
// time during AddExtension, which is the authoritative recovery path.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for pkgName, def := range r.PackageRegistry {
		for i, pd := range def.Packets {
			if pd.Module == "" {
				errs = append(errs, fmt.Sprintf("extension '%s': packet %d has no module", pkgName, i))
				continue
			}
			if _, ok := r.ModuleRegistry[pd.Module]; !ok {
				errs = append(errs, fmt.Sprintf("extension '%s': packet %d references unregistered module '%s'", pkgName, i, pd.Module))
			}
			if pd.App != "" {
				if _, ok := r.AppFactoryRegistry[pd.App]; !ok {
					errs = append(errs, fmt.Sprintf("extension '%s': packet %d references unregistered app factory '%s'", pkgName, i, pd.App))
				}
				continue
			}
			if mod, ok := r.ModuleRegistry[pd.Module]; ok && mod.Load == nil {
				logger.Warn("Module registers no load hook and its packet declares no app; loading this point will fail.",
					"extension", pkgName, "module", pd.Module)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
