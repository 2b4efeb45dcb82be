package hcl

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level HCL schema for a manifest file.
type fileSchema struct {
	Switches []*switchesSchema `hcl:"extensions,block"`
	Packages []*packageSchema  `hcl:"extension,block"`
}

// switchesSchema is the `extensions { enabled = { ... } }` block toggling
// extensions on and off. Enabled stays an expression so it can be evaluated
// and converted through cty.
type switchesSchema struct {
	Enabled hcl.Expression `hcl:"enabled,optional"`
}

// packageSchema is one `extension "name" { ... }` block declaring the
// metadata packets an extension package contributes.
type packageSchema struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Points      []*pointSchema `hcl:"point,block"`
}

// pointSchema is one `point { ... }` block. Module is left optional at the
// syntax level: a missing module is a metadata validation error surfaced
// per extension, not a parse failure aborting the whole manifest set.
type pointSchema struct {
	Module string `hcl:"module,optional"`
	Name   string `hcl:"name,optional"`
	App    string `hcl:"app,optional"`
}
