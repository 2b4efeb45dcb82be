// Package hcl provides the concrete HCL implementation of the manifest
// loading interface defined in the `config` package. It parses extension
// manifest files and translates them into the format-agnostic model.
package hcl
