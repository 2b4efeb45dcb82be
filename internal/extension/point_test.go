package extension

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	resolver := &stubResolver{modules: map[string]*Module{
		"pkgX": {Name: "pkgX"},
	}}

	t.Run("missing module is a metadata error", func(t *testing.T) {
		_, err := NewPoint(Packet{Name: "x"}, resolver)
		var metaErr *MetadataError
		require.ErrorAs(t, err, &metaErr)
	})

	t.Run("unresolvable module", func(t *testing.T) {
		_, err := NewPoint(Packet{Module: "dne"}, resolver)
		var notFound *ModuleNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "dne", notFound.Name)
	})

	t.Run("app factory runs exactly once at validation", func(t *testing.T) {
		factoryCalls := 0
		app := &stubApp{name: "X"}
		point, err := NewPoint(Packet{Module: "pkgX", NewApp: func() App {
			factoryCalls++
			return app
		}}, resolver)
		require.NoError(t, err)
		assert.Equal(t, 1, factoryCalls)
		assert.Same(t, app, point.App())

		// Later lifecycle calls must not re-instantiate the app.
		require.NoError(t, point.Link(context.Background(), nil))
		require.NoError(t, point.Load(context.Background(), nil))
		assert.Equal(t, 1, factoryCalls)
	})
}

func TestPointName(t *testing.T) {
	resolver := &stubResolver{modules: map[string]*Module{
		"pkgX": {Name: "pkgX"},
	}}

	t.Run("app name wins", func(t *testing.T) {
		point, err := NewPoint(Packet{Module: "pkgX", Name: "packet_name", NewApp: func() App {
			return &stubApp{name: "X"}
		}}, resolver)
		require.NoError(t, err)
		assert.Equal(t, "X", point.Name())
	})

	t.Run("packet name beats module name", func(t *testing.T) {
		point, err := NewPoint(Packet{Module: "pkgX", Name: "packet_name"}, resolver)
		require.NoError(t, err)
		assert.Equal(t, "packet_name", point.Name())
	})

	t.Run("module name is the fallback", func(t *testing.T) {
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)
		assert.Equal(t, "pkgX", point.Name())
	})
}

func TestPointLink(t *testing.T) {
	t.Run("app hook wins over module hook", func(t *testing.T) {
		var calls []string
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX", Link: countingHook(&calls, "module_link", nil)},
		}}
		app := &stubApp{name: "X"}
		point, err := NewPoint(Packet{Module: "pkgX", NewApp: func() App { return app }}, resolver)
		require.NoError(t, err)

		require.NoError(t, point.Link(context.Background(), nil))
		assert.Equal(t, 1, app.linkCalls)
		assert.Empty(t, calls)
	})

	t.Run("module hook used without app", func(t *testing.T) {
		var calls []string
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX", Link: countingHook(&calls, "module_link", nil)},
		}}
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)

		require.NoError(t, point.Link(context.Background(), nil))
		assert.Equal(t, []string{"module_link"}, calls)
	})

	t.Run("missing link hook is a no-op", func(t *testing.T) {
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX"},
		}}
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)
		assert.NoError(t, point.Link(context.Background(), nil))
	})

	t.Run("hook errors propagate", func(t *testing.T) {
		hookErr := errors.New("boom")
		var calls []string
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX", Link: countingHook(&calls, "module_link", hookErr)},
		}}
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)
		assert.ErrorIs(t, point.Link(context.Background(), nil), hookErr)
	})
}

func TestPointLoad(t *testing.T) {
	t.Run("load hook is mandatory", func(t *testing.T) {
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX"},
		}}
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)

		loadErr := point.Load(context.Background(), nil)
		var notFound *LoaderNotFoundError
		require.ErrorAs(t, loadErr, &notFound)
		assert.Equal(t, "pkgX", notFound.Module)
	})

	t.Run("app satisfies the load requirement", func(t *testing.T) {
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX"},
		}}
		app := &stubApp{name: "X"}
		point, err := NewPoint(Packet{Module: "pkgX", NewApp: func() App { return app }}, resolver)
		require.NoError(t, err)

		require.NoError(t, point.Load(context.Background(), nil))
		assert.Equal(t, 1, app.loadCalls)
	})

	t.Run("module load hook is invoked with the host", func(t *testing.T) {
		var gotHost Host
		resolver := &stubResolver{modules: map[string]*Module{
			"pkgX": {Name: "pkgX", Load: func(ctx context.Context, host Host) error {
				gotHost = host
				return nil
			}},
		}}
		point, err := NewPoint(Packet{Module: "pkgX"}, resolver)
		require.NoError(t, err)

		host := &struct{ name string }{name: "server"}
		require.NoError(t, point.Load(context.Background(), host))
		assert.Same(t, host, gotHost)
	})
}
