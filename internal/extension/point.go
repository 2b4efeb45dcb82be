package extension

import "context"

// Host is the opaque host-application reference handed to every hook
// invocation. The core never inspects it.
type Host = any

// LinkHook wires an extension point into the host without activating it.
type LinkHook func(ctx context.Context, host Host) error

// LoadHook activates an extension point's behavior in the host.
type LoadHook func(ctx context.Context, host Host) error

// App is an optional host-application object an extension point may carry.
// When present, its hooks take precedence over the module-level ones and
// its name overrides the packet's.
type App interface {
	Name() string
	LinkHost(ctx context.Context, host Host) error
	LoadHost(ctx context.Context, host Host) error
}

// Module is the resolved handle for an importable unit: the hooks the unit
// registered under its name. Either hook may be nil.
type Module struct {
	Name string
	Link LinkHook
	Load LoadHook
}

// Packet is one immutable metadata packet declaring an extension point.
// Module is required. Name defaults to the module name, or to the app's
// declared name when a factory is present. NewApp, when set, is invoked
// exactly once at validation time.
type Packet struct {
	Module string
	Name   string
	NewApp func() App
}

// Resolver locates importable units. Implemented by the module registry;
// the core only depends on this interface.
type Resolver interface {
	// ResolveModule returns the hook handle registered under name, or a
	// ModuleNotFoundError.
	ResolveModule(name string) (*Module, error)
	// PackageMetadata returns the ordered packet sequence declared for an
	// extension package, or a ModuleNotFoundError.
	PackageMetadata(name string) ([]Packet, error)
}

// Point is one validated extension point. The module handle and app object
// are set at construction and never mutated afterwards.
type Point struct {
	packet Packet
	module *Module
	app    App
}

// NewPoint validates a metadata packet and resolves its module. A packet
// without a module is a MetadataError; an unresolvable module is a
// ModuleNotFoundError. The app factory, if any, runs exactly once here —
// repeated link/load calls never re-instantiate the app.
func NewPoint(packet Packet, resolver Resolver) (*Point, error) {
	if packet.Module == "" {
		return nil, &MetadataError{Reason: "there is no 'module' key in the extension's metadata packet"}
	}
	module, err := resolver.ResolveModule(packet.Module)
	if err != nil {
		return nil, err
	}
	p := &Point{packet: packet, module: module}
	if packet.NewApp != nil {
		p.app = packet.NewApp()
	}
	return p, nil
}

// App returns the instantiated app object, or nil.
func (p *Point) App() App { return p.app }

// ModuleName returns the name of the module backing this point.
func (p *Point) ModuleName() string { return p.packet.Module }

// Name returns the point's logical name: the app's declared name if an app
// exists, else the packet's name, else the module name.
func (p *Point) Name() string {
	if p.app != nil {
		return p.app.Name()
	}
	if p.packet.Name != "" {
		return p.packet.Name
	}
	return p.packet.Module
}

// Link wires the point into the host. The app's link hook wins over the
// module's; a point with neither is linked as a no-op. Hook errors
// propagate to the caller.
func (p *Point) Link(ctx context.Context, host Host) error {
	if p.app != nil {
		return p.app.LinkHost(ctx, host)
	}
	if p.module.Link != nil {
		return p.module.Link(ctx, host)
	}
	return nil
}

// Load activates the point in the host. Unlike Link there is no silent
// fallback: a point with neither an app nor a module load hook fails with
// a LoaderNotFoundError.
func (p *Point) Load(ctx context.Context, host Host) error {
	if p.app != nil {
		return p.app.LoadHost(ctx, host)
	}
	if p.module.Load == nil {
		return &LoaderNotFoundError{Point: p.Name(), Module: p.packet.Module}
	}
	return p.module.Load(ctx, host)
}
