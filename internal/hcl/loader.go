package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/extpointgo/internal/config"
	"github.com/vk/extpointgo/internal/ctxlog"
	"github.com/vk/extpointgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl manifest reachable from the given paths and merges
// them into a single model. Later files win on conflicting enabled switches;
// extension blocks for the same package name are replaced, not merged.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk manifest path %s: %w", path, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", path)
			continue
		}

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			var file fileSchema
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
			}

			if err := l.translateFile(model, &file); err != nil {
				return nil, fmt.Errorf("invalid manifest %s: %w", filePath, err)
			}
			logger.Debug("Loaded manifest file.", "file", filePath)
		}
	}

	logger.Info("Manifests loaded.", "packages", len(model.Packages), "switches", len(model.Enabled))
	return model, nil
}

// translateFile merges one parsed manifest file into the model.
func (l *Loader) translateFile(model *config.Model, file *fileSchema) error {
	for _, sw := range file.Switches {
		enabled, err := decodeEnabledMap(sw.Enabled)
		if err != nil {
			return err
		}
		for name, on := range enabled {
			model.Enabled[name] = on
		}
	}

	for _, pkg := range file.Packages {
		def := &config.PackageDefinition{
			Name:        pkg.Name,
			Description: pkg.Description,
		}
		for _, point := range pkg.Points {
			def.Packets = append(def.Packets, &config.PacketDefinition{
				Module: point.Module,
				Name:   point.Name,
				App:    point.App,
			})
		}
		model.Packages[pkg.Name] = def
	}

	return nil
}

// decodeEnabledMap evaluates the `enabled` expression and converts it to a
// map of booleans.
func decodeEnabledMap(expr hcl.Expression) (map[string]bool, error) {
	enabled := make(map[string]bool)
	if expr == nil {
		return enabled, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate 'enabled': %w", diags)
	}
	if val.IsNull() {
		return enabled, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.Bool))
	if err != nil {
		return nil, fmt.Errorf("'enabled' must be a map of booleans: %w", err)
	}
	if converted.IsNull() {
		return enabled, nil
	}

	for it := converted.ElementIterator(); it.Next(); {
		key, on := it.Element()
		enabled[key.AsString()] = on.True()
	}
	return enabled, nil
}
