package extension

import (
	"context"
	"log/slog"
	"sort"
)

// Manager holds the registry of enabled extension packages and drives
// link/load across all of them in name-sorted order. It is constructed once
// at host startup and driven from a single control thread; nothing here
// locks.
type Manager struct {
	logger   *slog.Logger
	resolver Resolver

	packages map[string]*Package
	linked   map[string]bool
}

// NewManager creates an empty manager resolving extensions through the
// given resolver.
func NewManager(resolver Resolver, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		resolver: resolver,
		packages: make(map[string]*Package),
		linked:   make(map[string]bool),
	}
}

// EnabledExtensions returns the names of all enabled extensions in
// ascending name order, independent of insertion order. This is the
// ordering contract for every batch operation.
func (m *Manager) EnabledExtensions() []string {
	names := make([]string, 0, len(m.packages))
	for name := range m.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extension returns the enabled package registered under name.
func (m *Manager) Extension(name string) (*Package, bool) {
	pkg, ok := m.packages[name]
	return pkg, ok
}

// FromEnabledMap adds every extension whose value in the map is true.
// Iteration order does not matter downstream: the enabled set is always
// consumed sorted.
func (m *Manager) FromEnabledMap(enabled map[string]bool) {
	for name, on := range enabled {
		if on {
			m.AddExtension(name)
		}
	}
}

// AddExtension constructs the package for name and adds it to the enabled
// set. Any construction failure (unresolvable package, bad packet) is
// logged as a warning and the extension is skipped for the remainder of
// the process; it is never retried.
func (m *Manager) AddExtension(name string) {
	pkg, err := NewPackage(name, m.resolver)
	if err != nil {
		m.logger.Warn("Extension could not be added and will be skipped.", "extension", name, "error", err)
		return
	}
	m.packages[name] = pkg
	m.logger.Debug("Extension added.", "extension", name, "points", pkg.PointNames())
}

// LinkExtension links all points of one extension unless it is already
// linked. A successful link sets the linked flag so later calls
// short-circuit; a failed link leaves it unset. Failures are logged and
// recorded in the outcome, never re-raised.
func (m *Manager) LinkExtension(ctx context.Context, name string, host Host) Outcome {
	out := Outcome{Extension: name, Phase: PhaseLink}
	if m.linked[name] {
		out.Skipped = true
		return out
	}
	pkg, ok := m.packages[name]
	if !ok {
		out.Err = &ModuleNotFoundError{Name: name}
		m.logger.Warn("Cannot link unknown extension.", "extension", name)
		return out
	}
	if err := pkg.LinkAllPoints(ctx, host); err != nil {
		out.Err = err
		m.logger.Warn("Extension failed to link.", "extension", name, "error", err)
		return out
	}
	m.linked[name] = true
	m.logger.Debug("Extension linked.", "extension", name)
	return out
}

// LoadExtension loads all points of one extension. Failures are logged and
// recorded in the outcome so the caller's sweep continues with the next
// extension.
func (m *Manager) LoadExtension(ctx context.Context, name string, host Host) Outcome {
	out := Outcome{Extension: name, Phase: PhaseLoad}
	pkg, ok := m.packages[name]
	if !ok {
		out.Err = &ModuleNotFoundError{Name: name}
		m.logger.Warn("Cannot load unknown extension.", "extension", name)
		return out
	}
	if err := pkg.LoadAllPoints(ctx, host); err != nil {
		out.Err = err
		m.logger.Warn("Extension failed to load.", "extension", name, "error", err)
		return out
	}
	m.logger.Debug("Extension loaded.", "extension", name)
	return out
}

// LinkAllExtensions links every enabled extension in sorted order. Each
// extension's failure is isolated, so the sweep always covers the full set
// exactly once; the report carries the per-extension results.
func (m *Manager) LinkAllExtensions(ctx context.Context, host Host) Report {
	report := make(Report, 0, len(m.packages))
	for _, name := range m.EnabledExtensions() {
		report = append(report, m.LinkExtension(ctx, name, host))
	}
	return report
}

// LoadAllExtensions loads every enabled extension in sorted order with the
// same isolation contract as LinkAllExtensions.
func (m *Manager) LoadAllExtensions(ctx context.Context, host Host) Report {
	report := make(Report, 0, len(m.packages))
	for _, name := range m.EnabledExtensions() {
		report = append(report, m.LoadExtension(ctx, name, host))
	}
	return report
}
