// Package jsonloader loads modules from the JSON interchange format.
package jsonloader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/model"
)

// Loader is the JSON implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new JSON module loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the module at path.
func (l *Loader) Load(ctx context.Context, path string) (*model.Module, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module %s: %w", path, err)
	}

	var m model.Module
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode module %s: %w", path, err)
	}

	logger.Debug("JSON loading complete.", "path", path, "lines", len(m.Handlers), "errors", countErrors(&m))
	return &m, nil
}

// countErrors returns the number of argument values that were absorbed as
// model.Error while loading.
func countErrors(m *model.Module) int {
	n := 0
	for _, line := range m.Handlers {
		for _, op := range line.Operations {
			for _, arg := range op.Arguments {
				if arg.Value.Kind() == model.KindError {
					n++
				}
			}
		}
	}
	return n
}
