// Package socketio implements the "socketio" sink, which emits every
// compiled module on a socket.io event and waits for the server to
// acknowledge it.
package socketio

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/registry"
)

const (
	DefaultNamespace = "/"
	DefaultEvent     = "module"
	DefaultAckEvent  = "module_ack"
	DefaultTimeout   = 10 * time.Second
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink emits programs to a socket.io server. Every delivery uses its own
// connection so acknowledgements cannot be confused between modules.
type Sink struct {
	baseURL   string
	path      string
	namespace string
	event     string
	ackEvent  string
	timeout   time.Duration
}

// New creates a socket.io sink for the URL in cfg.Target.
func New(cfg registry.SinkConfig) (registry.Sink, error) {
	parsedURL, err := url.Parse(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("socketio sink needs a URL as output target, got '%s'", cfg.Target)
	}

	s := &Sink{
		baseURL:   fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:      parsedURL.Path,
		namespace: orDefault(cfg.SocketIONamespace, DefaultNamespace),
		event:     orDefault(cfg.SocketIOEvent, DefaultEvent),
		ackEvent:  orDefault(cfg.SocketIOAckEvent, DefaultAckEvent),
		timeout:   cfg.Timeout,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	return s, nil
}

// Payload returns the event data emitted for out.
func Payload(out registry.Output) map[string]any {
	return map[string]any{
		"name":        out.Name,
		"bits":        out.Program.Bits,
		"strings":     len(out.Program.Strings),
		"index_width": out.Program.IndexWidth,
		"data":        out.Program.Data,
	}
}

// Deliver connects, emits out and waits for the acknowledgement event.
func (s *Sink) Deliver(ctx context.Context, out registry.Output) error {
	logger := ctxlog.FromContext(ctx).With("sink", "socketio", "url", s.baseURL, "event", s.event, "ackEvent", s.ackEvent)
	logger.Debug("Delivery started")
	defer logger.Debug("Delivery finished")

	var isConnected atomic.Bool
	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	if s.path != "" {
		opts.SetPath(s.path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(s.baseURL, opts)
	io := manager.Socket(s.namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Successfully connected", "namespace", s.namespace, "sid", io.Id())
		io.Emit(s.event, Payload(out))
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = fmt.Errorf("connect error: %w", e)
			}
		}
		select {
		case done <- err:
		default:
		}
	})

	io.On(types.EventName(s.ackEvent), func(data ...any) {
		var err error
		if len(data) > 0 {
			err = ackError(data[0])
		}
		select {
		case done <- err:
		default:
		}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("timed out after connecting while waiting for event '%s'", s.ackEvent)
		}
		return fmt.Errorf("timed out while waiting for initial connection")
	case err := <-done:
		if err == nil {
			logger.Info("Program acknowledged", "name", out.Name)
		}
		return err
	}
}

// ackError reports a rejection carried in an acknowledgement payload of the
// form {"error": "..."}.
func ackError(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}
	if msg, ok := m["error"]; ok && msg != nil {
		return fmt.Errorf("server rejected module: %v", msg)
	}
	return nil
}

// Close implements registry.Sink.
func (s *Sink) Close() error { return nil }

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink("socketio", New)
}
