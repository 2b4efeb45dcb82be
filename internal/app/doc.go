// Package app wires the application together: it builds an isolated
// logger, loads the extension manifests, populates and validates the
// module registry, and constructs the extension manager that drives the
// link and load phases across every enabled extension.
package app
