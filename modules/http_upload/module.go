// Package http_upload implements the "http" sink, which uploads every
// compiled module with a PUT request, e.g. to a pre-signed object storage URL.
package http_upload

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/registry"
)

const (
	// NamePlaceholder in the target URL is replaced by the module name.
	NamePlaceholder = "{name}"
	// BitLengthHeader carries the exact encoded length in bits.
	BitLengthHeader = "X-Bit-Length"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink uploads programs over HTTP. One client is shared by all deliveries to
// reuse connections.
type Sink struct {
	target string
	client *http.Client
}

// New creates an HTTP sink. The target must be an absolute http(s) URL.
func New(cfg registry.SinkConfig) (registry.Sink, error) {
	u, err := url.Parse(strings.ReplaceAll(cfg.Target, NamePlaceholder, "x"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("http sink needs an http(s) URL as output target, got '%s'", cfg.Target)
	}
	return &Sink{
		target: cfg.Target,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// URL returns the upload URL of a module named name.
func (s *Sink) URL(name string) string {
	return strings.ReplaceAll(s.target, NamePlaceholder, url.PathEscape(name))
}

// SingleTarget reports whether the target URL lacks NamePlaceholder.
func (s *Sink) SingleTarget() bool {
	return !strings.Contains(s.target, NamePlaceholder)
}

// Deliver uploads the program bytes of out.
func (s *Sink) Deliver(ctx context.Context, out registry.Output) error {
	target := s.URL(out.Name)
	logger := ctxlog.FromContext(ctx).With("sink", "http", "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(out.Program.Data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(BitLengthHeader, strconv.FormatUint(out.Program.Bits, 10))
	req.ContentLength = int64(len(out.Program.Data))

	logger.Info("Uploading program", "size", len(out.Program.Data), "bits", out.Program.Bits)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload of '%s' failed with status: %s", out.Name, resp.Status)
	}

	logger.Info("Successfully uploaded program", "status", resp.Status)
	return nil
}

// Close releases idle connections.
func (s *Sink) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink("http", New)
}
