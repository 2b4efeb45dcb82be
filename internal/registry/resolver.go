package registry

import (
	"fmt"

	"github.com/vk/extpointgo/internal/extension"
)

// The Registry is the concrete module-resolution collaborator for the
// extension core.
var _ extension.Resolver = (*Registry)(nil)

// ResolveModule returns the hook handle registered under name.
func (r *Registry) ResolveModule(name string) (*extension.Module, error) {
	mod, ok := r.ModuleRegistry[name]
	if !ok {
		return nil, &extension.ModuleNotFoundError{Name: name}
	}
	return &extension.Module{Name: name, Link: mod.Link, Load: mod.Load}, nil
}

// PackageMetadata translates the manifest definition for an extension
// package into the ordered packet sequence the core consumes. A packet
// referencing an unregistered app factory is malformed metadata.
func (r *Registry) PackageMetadata(name string) ([]extension.Packet, error) {
	def, ok := r.PackageRegistry[name]
	if !ok {
		return nil, &extension.ModuleNotFoundError{Name: name}
	}
	packets := make([]extension.Packet, 0, len(def.Packets))
	for _, pd := range def.Packets {
		packet := extension.Packet{Module: pd.Module, Name: pd.Name}
		if pd.App != "" {
			factory, ok := r.AppFactoryRegistry[pd.App]
			if !ok {
				return nil, &extension.MetadataError{
					Reason: fmt.Sprintf("packet for module %q references unregistered app factory %q", pd.Module, pd.App),
				}
			}
			packet.NewApp = factory
		}
		packets = append(packets, packet)
	}
	return packets, nil
}
