package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/extpointgo/internal/config"
	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/extension"
	"github.com/vk/extpointgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	manager  *extension.Manager
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry,
// and extension manager built from the enabled-extensions map.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load the manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	// Create and populate the registry with Go hooks.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreExtensions
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go extension modules registered.", "count", len(modules))

	// Populate the registry's definitions from the loaded manifests.
	reg.PopulateFromModel(model)
	logger.Debug("Registry definitions populated from manifest model.")

	// Parity-check the registry. A mismatch only disables the affected
	// extensions later, so this reports instead of aborting.
	if err := reg.Validate(ctx); err != nil {
		logger.Warn("Registry validation reported problems.", "error", err)
	} else {
		logger.Debug("Registry validation passed.")
	}

	manager := extension.NewManager(reg, logger)
	manager.FromEnabledMap(model.Enabled)
	logger.Debug("Extension manager built.", "enabled", manager.EnabledExtensions())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		manager:  manager,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Manager returns the application's extension manager.
func (a *App) Manager() *extension.Manager {
	return a.manager
}
