package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/extpointgo/internal/extension"
)

// RegisterModule registers the Go hooks for an importable unit. Duplicate
// registration is a programmer error.
func (r *Registry) RegisterModule(name string, mod *RegisteredModule) {
	if _, exists := r.ModuleRegistry[name]; exists {
		panic(fmt.Sprintf("module with name '%s' already registered", name))
	}
	slog.Debug("Registering module hooks.", "name", name)
	r.ModuleRegistry[name] = mod
}

// RegisterAppFactory registers a factory producing an extension app, under
// the name manifests use to reference it.
func (r *Registry) RegisterAppFactory(name string, factory func() extension.App) {
	if _, exists := r.AppFactoryRegistry[name]; exists {
		panic(fmt.Sprintf("app factory with name '%s' already registered", name))
	}
	slog.Debug("Registering app factory.", "name", name)
	r.AppFactoryRegistry[name] = factory
}
