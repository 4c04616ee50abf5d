// Package file implements the "file" sink, which writes every compiled
// module to disk.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/registry"
)

// Extension is appended to module names to form output file names.
const Extension = ".bin"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink writes programs below a directory, or to one exact file when the
// target itself ends in Extension.
type Sink struct {
	target string
}

// New creates a file sink. An empty target means the current directory.
func New(cfg registry.SinkConfig) (registry.Sink, error) {
	target := cfg.Target
	if target == "" {
		target = "."
	}
	return &Sink{target: target}, nil
}

// Path returns the file a module named name is written to.
func (s *Sink) Path(name string) string {
	if s.SingleTarget() {
		return s.target
	}
	return filepath.Join(s.target, filepath.FromSlash(name)+Extension)
}

// SingleTarget reports whether the target is one exact file.
func (s *Sink) SingleTarget() bool {
	return strings.EqualFold(filepath.Ext(s.target), Extension)
}

// Deliver writes the program bytes of out.
func (s *Sink) Deliver(ctx context.Context, out registry.Output) error {
	path := s.Path(out.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for '%s': %w", path, err)
	}
	if err := os.WriteFile(path, out.Program.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	ctxlog.FromContext(ctx).Info("Program written.", "path", path, "bytes", len(out.Program.Data))
	return nil
}

// Close implements registry.Sink.
func (s *Sink) Close() error { return nil }

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink("file", New)
}
