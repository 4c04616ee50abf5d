package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/batatacode/internal/model"
)

// ErrUnsupportedFormat is returned when no loader handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported module format")

// Loader is the interface for a format-specific module loader.
type Loader interface {
	// Load reads the module at path. It returns a fully built module or an
	// error; it never returns a partial module.
	Load(ctx context.Context, path string) (*model.Module, error)
}

// Loaders maps a lower-case file extension (".json") to its Loader. Loaders
// is itself a Loader.
type Loaders map[string]Loader

// For returns the loader registered for the extension of path.
func (l Loaders) For(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := l[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(l.Extensions(), ", "))
	}
	return loader, nil
}

// Load loads path with the loader registered for its extension.
func (l Loaders) Load(ctx context.Context, path string) (*model.Module, error) {
	loader, err := l.For(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, path)
}

// Extensions returns the registered extensions in sorted order.
func (l Loaders) Extensions() []string {
	exts := make([]string, 0, len(l))
	for ext := range l {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
