// Package registry provides the central "glue" for the extension system.
//
// The Registry stores mappings between the string identifiers used in
// manifests (module names like "health", app factory names like
// "NewHealthApp") and the compiled Go hooks and factories that implement
// them. It also holds the parsed, format-agnostic packet definitions from
// the manifests themselves.
//
// Hook lookup is resolved through these tables exactly once, when an
// extension point is constructed; nothing is probed reflectively at
// link or load time.
package registry
