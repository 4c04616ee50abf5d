package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/model"
	"github.com/vk/batatacode/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL module loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the module file at path and translates it into the model.
func (l *Loader) Load(ctx context.Context, path string) (*model.Module, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root schema.ModuleFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	m := &model.Module{Handlers: make([]model.Line, 0, len(root.Lines))}
	for i, line := range root.Lines {
		translated, err := l.translateLine(ctx, line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d (%q): %w", path, i, line.Type, err)
		}
		m.Handlers = append(m.Handlers, translated)
	}

	logger.Debug("HCL loading complete.", "path", path, "lines", len(m.Handlers))
	return m, nil
}
