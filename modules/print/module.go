// Package print implements the "stdout" sink: a summary line and a hex dump
// of every compiled module.
package print

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink writes programs to a writer. Dumps of concurrent deliveries never
// interleave.
type Sink struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a stdout sink writing to cfg.Out, or os.Stdout when unset.
func New(cfg registry.SinkConfig) (registry.Sink, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return &Sink{out: out}, nil
}

// Deliver prints the summary and the hex dump of out.
func (s *Sink) Deliver(ctx context.Context, out registry.Output) error {
	ctxlog.FromContext(ctx).Debug("Printing program.", "name", out.Name)

	p := out.Program
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.out, "%s: %d bits (%d bytes), %d strings, %d-bit string index\n",
		out.Name, p.Bits, len(p.Data), len(p.Strings), p.IndexWidth); err != nil {
		return err
	}
	_, err := io.WriteString(s.out, hex.Dump(p.Data))
	return err
}

// Close implements registry.Sink.
func (s *Sink) Close() error { return nil }

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink("stdout", New)
}
