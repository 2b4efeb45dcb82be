// Package envinfo is a built-in extension that logs the host's environment
// when it is loaded. Useful as a startup diagnostic and as the smallest
// possible module-hook extension.
package envinfo

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/extension"
	"github.com/vk/extpointgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

type settings struct {
	Prefix string `env:"EXTPOINT_ENVINFO_PREFIX" envDefault:"EXTPOINT_"`
}

// loadHost logs every environment variable matching the configured prefix,
// sorted for deterministic output.
func loadHost(ctx context.Context, host extension.Host) error {
	logger := ctxlog.FromContext(ctx)

	var cfg settings
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	var keys []string
	values := make(map[string]string)
	for _, entry := range os.Environ() {
		pair := strings.SplitN(entry, "=", 2)
		if len(pair) == 2 && strings.HasPrefix(pair[0], cfg.Prefix) {
			keys = append(keys, pair[0])
			values[pair[0]] = pair[1]
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		logger.Info("Host environment", "key", key, "value", values[key])
	}
	logger.Debug("Environment info reported.", "prefix", cfg.Prefix, "count", len(keys))
	return nil
}

// Register registers the module's load hook. There is no link hook: wiring
// is a no-op for this extension.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("envinfo", &registry.RegisteredModule{
		Load: loadHost,
	})
}
