package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/vk/batatacode/internal/bytecode"
)

// ErrUnknownSink is returned when no sink is registered under a name.
var ErrUnknownSink = errors.New("unknown sink")

// Module is the interface that all sink modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Output is one compiled module handed to a sink.
type Output struct {
	// Name identifies the module: its path relative to the compiled root,
	// without extension, with forward slashes.
	Name string
	// Source is the path the module was loaded from.
	Source  string
	Program *bytecode.Program
}

// Sink delivers compiled modules. Deliver may be called concurrently.
type Sink interface {
	Deliver(ctx context.Context, out Output) error
	Close() error
}

// SingleTarget is implemented by sinks whose configured target can name
// just one destination. Such a sink reports true when every module would be
// delivered to the same place.
type SingleTarget interface {
	SingleTarget() bool
}

// Registry holds the sink factories of a single application instance.
type Registry struct {
	sinks map[string]SinkFactory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{sinks: make(map[string]SinkFactory)}
}

// Sinks returns the registered sink names in sorted order.
func (r *Registry) Sinks() []string {
	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewSink builds the sink registered under name.
func (r *Registry) NewSink(name string, cfg SinkConfig) (Sink, error) {
	factory, ok := r.sinks[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownSink, name, r.Sinks())
	}
	return factory(cfg)
}
