package registry

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// SinkConfig carries the command-line settings a sink may use.
type SinkConfig struct {
	// Out receives human-readable output.
	Out io.Writer
	// Target is the sink destination: a directory, a file or a URL.
	Target string
	// Timeout bounds one delivery.
	Timeout time.Duration

	SocketIONamespace string
	SocketIOEvent     string
	SocketIOAckEvent  string
}

// SinkFactory builds a sink from its configuration.
type SinkFactory func(cfg SinkConfig) (Sink, error)

// RegisterSink registers a sink factory under name.
func (r *Registry) RegisterSink(name string, factory SinkFactory) {
	if _, exists := r.sinks[name]; exists {
		panic(fmt.Sprintf("sink with name '%s' already registered", name))
	}
	slog.Debug("Registering sink.", "name", name)
	r.sinks[name] = factory
}
