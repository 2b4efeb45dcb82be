package extension

import "context"

// stubResolver is an in-memory Resolver for tests.
type stubResolver struct {
	modules  map[string]*Module
	metadata map[string][]Packet
}

func (s *stubResolver) ResolveModule(name string) (*Module, error) {
	mod, ok := s.modules[name]
	if !ok {
		return nil, &ModuleNotFoundError{Name: name}
	}
	return mod, nil
}

func (s *stubResolver) PackageMetadata(name string) ([]Packet, error) {
	packets, ok := s.metadata[name]
	if !ok {
		return nil, &ModuleNotFoundError{Name: name}
	}
	return packets, nil
}

// stubApp is a recording App implementation.
type stubApp struct {
	name      string
	linkCalls int
	loadCalls int
	linkErr   error
	loadErr   error
}

func (a *stubApp) Name() string { return a.name }

func (a *stubApp) LinkHost(ctx context.Context, host Host) error {
	a.linkCalls++
	return a.linkErr
}

func (a *stubApp) LoadHost(ctx context.Context, host Host) error {
	a.loadCalls++
	return a.loadErr
}

// countingHook returns a hook that appends name to calls on each invocation.
func countingHook(calls *[]string, name string, err error) func(context.Context, Host) error {
	return func(ctx context.Context, host Host) error {
		*calls = append(*calls, name)
		return err
	}
}
