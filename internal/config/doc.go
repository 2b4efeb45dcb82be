// Package config defines the format-agnostic model for extension
// configuration: the enabled-extensions map and the metadata packets each
// extension package declares. Concrete loaders for specific formats, such
// as HCL, live in separate packages.
package config
