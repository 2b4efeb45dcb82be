package app

import (
	"github.com/vk/extpointgo/extensions/envinfo"
	"github.com/vk/extpointgo/extensions/health"
	"github.com/vk/extpointgo/extensions/socketio"
	"github.com/vk/extpointgo/internal/registry"
)

// coreExtensions is the definitive list of all extension modules that are
// compiled into the binary.
var coreExtensions = []registry.Module{
	&envinfo.Module{},
	&health.Module{},
	&socketio.Module{},
}
