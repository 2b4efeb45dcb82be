// Package health is a built-in extension exposing a liveness endpoint for
// the host application. It is app-backed: the manifest points at the
// NewHealthApp factory, link builds the routes, and load starts the server.
package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"

	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/extension"
	"github.com/vk/extpointgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

type settings struct {
	Port int `env:"EXTPOINT_HEALTH_PORT" envDefault:"8686"`
}

// App is the extension app for the health endpoint.
type App struct {
	cfg settings
	mux *http.ServeMux
}

// NewApp is the registered factory. It runs once, when the extension point
// is validated.
func NewApp() extension.App {
	return &App{}
}

// Name identifies the extension point; it overrides the packet's name.
func (a *App) Name() string { return "health" }

// LinkHost wires the routes without starting anything.
func (a *App) LinkHost(ctx context.Context, host extension.Host) error {
	logger := ctxlog.FromContext(ctx)
	if err := env.Parse(&a.cfg); err != nil {
		return fmt.Errorf("health extension settings: %w", err)
	}

	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	logger.Debug("Health routes linked.", "port", a.cfg.Port)
	return nil
}

// LoadHost starts the health check HTTP server.
func (a *App) LoadHost(ctx context.Context, host extension.Host) error {
	logger := ctxlog.FromContext(ctx)
	if a.mux == nil {
		return fmt.Errorf("health extension loaded before it was linked")
	}

	addr := fmt.Sprintf(":%d", a.cfg.Port)
	go func() {
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := http.ListenAndServe(addr, a.mux); err != nil {
			logger.Error("Health check server failed", "error", err)
		}
	}()
	return nil
}

// Register registers the module and its app factory.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("health", &registry.RegisteredModule{})
	r.RegisterAppFactory("NewHealthApp", NewApp)
}
