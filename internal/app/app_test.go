package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/extpointgo/internal/extension"
	"github.com/vk/extpointgo/internal/hcl"
	"github.com/vk/extpointgo/internal/registry"
)

// recordingModule is a minimal compiled-in extension for system tests.
type recordingModule struct {
	calls   *[]string
	host    *extension.Host
	loadErr error
}

func (m *recordingModule) Register(r *registry.Registry) {
	r.RegisterModule("rec", &registry.RegisteredModule{
		Link: func(ctx context.Context, host extension.Host) error {
			*m.calls = append(*m.calls, "link")
			*m.host = host
			return nil
		},
		Load: func(ctx context.Context, host extension.Host) error {
			*m.calls = append(*m.calls, "load")
			return m.loadErr
		},
	})
}

func writeTestManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extensions.hcl"), []byte(content), 0o644))
	return dir
}

const recManifest = `
extensions {
  enabled = { rec_ext = true }
}

extension "rec_ext" {
  point { module = "rec" }
}
`

func TestAppRun(t *testing.T) {
	var calls []string
	var host extension.Host
	mod := &recordingModule{calls: &calls, host: &host}

	dir := writeTestManifest(t, recManifest)
	cfg, err := NewConfig(Config{ManifestPath: dir})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, cfg, hcl.NewLoader(), mod)

	require.NoError(t, testApp.Run(context.Background(), cfg))
	assert.Equal(t, []string{"link", "load"}, calls)
	// The hooks receive the app itself as the opaque host reference.
	assert.Same(t, testApp, host)
	assert.Contains(t, logBuffer.String(), "Extension linked.")
	assert.Contains(t, logBuffer.String(), "Extension loaded.")
}

func TestAppRunStrict(t *testing.T) {
	var calls []string
	var host extension.Host
	mod := &recordingModule{calls: &calls, host: &host, loadErr: errors.New("load exploded")}

	dir := writeTestManifest(t, recManifest)

	t.Run("strict mode fails on a failing extension", func(t *testing.T) {
		calls = calls[:0]
		cfg, err := NewConfig(Config{ManifestPath: dir, Strict: true})
		require.NoError(t, err)

		testApp, _ := SetupAppTest(t, cfg, hcl.NewLoader(), mod)
		err = testApp.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, "phase(s) failed")
	})

	t.Run("default mode suppresses the failure", func(t *testing.T) {
		calls = calls[:0]
		cfg, err := NewConfig(Config{ManifestPath: dir})
		require.NoError(t, err)

		testApp, logBuffer := SetupAppTest(t, cfg, hcl.NewLoader(), mod)
		require.NoError(t, testApp.Run(context.Background(), cfg))
		assert.Contains(t, logBuffer.String(), "load exploded")
	})
}

func TestAppSkipsUnresolvableExtension(t *testing.T) {
	var calls []string
	var host extension.Host
	mod := &recordingModule{calls: &calls, host: &host}

	dir := writeTestManifest(t, `
extensions {
  enabled = { rec_ext = true, ghost_ext = true }
}

extension "rec_ext" {
  point { module = "rec" }
}

extension "ghost_ext" {
  point { module = "ghost" }
}
`)
	cfg, err := NewConfig(Config{ManifestPath: dir})
	require.NoError(t, err)

	testApp, logBuffer := SetupAppTest(t, cfg, hcl.NewLoader(), mod)

	// ghost_ext's module never registered: validation warns, the manager
	// skips it, and rec_ext still runs both phases.
	assert.Equal(t, []string{"rec_ext"}, testApp.Manager().EnabledExtensions())
	require.NoError(t, testApp.Run(context.Background(), cfg))
	assert.Equal(t, []string{"link", "load"}, calls)
	assert.Contains(t, logBuffer.String(), "ghost_ext")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)
}
