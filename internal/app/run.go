package app

import (
	"context"
	"fmt"

	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/extension"
)

// Run drives every enabled extension through the link phase and then the
// load phase, in name-sorted order. A single extension's failure never
// aborts the sweep; the combined report is logged, and only Strict mode
// turns failures into an error.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// The App itself is the opaque host reference handed to every hook.
	host := extension.Host(a)

	a.logger.Info("🔗 Linking enabled extensions...", "extensions", a.manager.EnabledExtensions())
	report := a.manager.LinkAllExtensions(ctx, host)

	a.logger.Info("🚀 Loading enabled extensions...")
	report = append(report, a.manager.LoadAllExtensions(ctx, host)...)

	failed := report.Failed()
	for _, outcome := range failed {
		a.logger.Warn("Extension phase failed.",
			"extension", outcome.Extension, "phase", outcome.Phase, "error", outcome.Err)
	}
	a.logger.Info("🏁 Extension startup finished.",
		"outcomes", len(report), "failures", len(failed))

	if appConfig.Strict && len(failed) > 0 {
		return fmt.Errorf("%d extension phase(s) failed", len(failed))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
