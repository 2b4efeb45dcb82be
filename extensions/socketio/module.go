// Package socketio is a built-in extension that announces host startup over
// a socket.io channel. Link validates the settings; load connects, emits
// the announce event, and disconnects.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/extension"
	"github.com/vk/extpointgo/internal/registry"
)

// Module implements the registry.Module interface for this package. It
// keeps the settings parsed at link time for the load hook.
type Module struct {
	cfg settings
}

type settings struct {
	URL                string        `env:"EXTPOINT_ANNOUNCE_URL"`
	Namespace          string        `env:"EXTPOINT_ANNOUNCE_NAMESPACE" envDefault:"/"`
	Event              string        `env:"EXTPOINT_ANNOUNCE_EVENT" envDefault:"host_started"`
	Timeout            time.Duration `env:"EXTPOINT_ANNOUNCE_TIMEOUT" envDefault:"10s"`
	InsecureSkipVerify bool          `env:"EXTPOINT_ANNOUNCE_INSECURE" envDefault:"false"`
}

// linkHost parses and validates the announce settings without opening any
// connection.
func (m *Module) linkHost(ctx context.Context, host extension.Host) error {
	logger := ctxlog.FromContext(ctx)
	if err := env.Parse(&m.cfg); err != nil {
		return fmt.Errorf("socketio extension settings: %w", err)
	}
	if m.cfg.URL == "" {
		logger.Debug("No announce URL configured; socketio extension will be a no-op.")
		return nil
	}
	if _, err := url.Parse(m.cfg.URL); err != nil {
		return fmt.Errorf("failed to parse announce URL: %w", err)
	}
	logger.Debug("Socketio announce settings linked.", "url", m.cfg.URL, "event", m.cfg.Event)
	return nil
}

// opResult is a private struct to safely pass results through the done channel.
type opResult struct {
	err error
}

// loadHost connects to the configured socket.io endpoint and emits the
// announce event, bounded by the configured timeout.
func (m *Module) loadHost(ctx context.Context, host extension.Host) error {
	logger := ctxlog.FromContext(ctx).With("extension", "socketio", "url", m.cfg.URL, "event", m.cfg.Event)
	if m.cfg.URL == "" {
		logger.Debug("Announce disabled, nothing to do.")
		return nil
	}
	logger.Debug("Announce starting")
	defer logger.Debug("Announce finished")

	parsedURL, err := url.Parse(m.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if m.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(m.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Connected, emitting announce event", "namespace", m.cfg.Namespace, "sid", io.Id())
		io.Emit(m.cfg.Event, map[string]any{"status": "loaded"})
		done <- opResult{}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- opResult{err: errs[0].(error)}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out while waiting for announce connection")
	case res := <-done:
		return res.err
	}
}

// Register registers the module's hooks.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("socketio", &registry.RegisteredModule{
		Link: m.linkHost,
		Load: m.loadHost,
	})
}
