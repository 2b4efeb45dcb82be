package registry

import (
	"github.com/vk/extpointgo/internal/config"
	"github.com/vk/extpointgo/internal/extension"
)

// Module is the interface that all compiled-in extensions must implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredModule holds the compiled Go hooks for one importable unit.
// Either hook may be nil: a missing link hook degrades to a no-op, a
// missing load hook is an error at load time unless the point carries an
// app.
type RegisteredModule struct {
	Link extension.LinkHook
	Load extension.LoadHook
}

// Registry holds all the registered hooks, app factories, and manifest
// definitions for a single application instance.
type Registry struct {
	ModuleRegistry     map[string]*RegisteredModule
	AppFactoryRegistry map[string]func() extension.App
	PackageRegistry    map[string]*config.PackageDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ModuleRegistry:     make(map[string]*RegisteredModule),
		AppFactoryRegistry: make(map[string]func() extension.App),
		PackageRegistry:    make(map[string]*config.PackageDefinition),
	}
}

// PopulateFromModel copies the loaded manifest definitions from the config
// model into the registry for resolution during manager construction.
func (r *Registry) PopulateFromModel(model *config.Model) {
	for name, def := range model.Packages {
		r.PackageRegistry[name] = def
	}
}
