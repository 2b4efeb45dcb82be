package config

import "context"

// Model is the unified representation of everything the manifest files
// declare: which extensions are enabled and what extension points each one
// contributes.
type Model struct {
	// Enabled maps extension package names to their on/off state.
	Enabled map[string]bool
	// Packages maps extension package names to their declared metadata.
	Packages map[string]*PackageDefinition
}

// NewModel creates an empty model with initialized maps.
func NewModel() *Model {
	return &Model{
		Enabled:  make(map[string]bool),
		Packages: make(map[string]*PackageDefinition),
	}
}

// PackageDefinition is the declared metadata of one extension package.
type PackageDefinition struct {
	Name        string
	Description string
	Packets     []*PacketDefinition
}

// PacketDefinition is one declared extension point. Module names the
// registered Go module backing the point; App optionally names a registered
// app factory.
type PacketDefinition struct {
	Module string
	Name   string
	App    string
}

// Loader is the interface for a format-specific manifest loader. Load reads
// every manifest reachable from the given paths and merges them into a
// single model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
