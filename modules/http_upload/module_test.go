package http_upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/batatacode/internal/bytecode"
	"github.com/vk/batatacode/internal/registry"
)

func TestDeliver(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	type request struct {
		method, path, contentType, bits string
		body                            []byte
	}
	got := make(chan request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- request{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			bits:        r.Header.Get(BitLengthHeader),
			body:        body,
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sink, err := New(registry.SinkConfig{Target: server.URL + "/modules/{name}.bin", Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer sink.Close()

	// --- Act ---
	err = sink.Deliver(context.Background(), registry.Output{
		Name:    "main",
		Program: &bytecode.Program{Data: []byte{0xAB, 0x01}, Bits: 9},
	})

	// --- Assert ---
	require.NoError(t, err)
	req := <-got
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/modules/main.bin", req.path)
	assert.Equal(t, "application/octet-stream", req.contentType)
	assert.Equal(t, "9", req.bits)
	assert.Equal(t, []byte{0xAB, 0x01}, req.body)
}

func TestDeliverFailsOnErrorStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	sink, err := New(registry.SinkConfig{Target: server.URL, Timeout: time.Second})
	require.NoError(t, err)

	err = sink.Deliver(context.Background(), registry.Output{Name: "main", Program: &bytecode.Program{}})
	require.ErrorContains(t, err, "403")
}

func TestNewRejectsBadTarget(t *testing.T) {
	t.Parallel()
	for _, target := range []string{"", "ftp://host/x", "/local/path", "http://"} {
		_, err := New(registry.SinkConfig{Target: target})
		assert.Error(t, err, target)
	}
}

func TestSingleTarget(t *testing.T) {
	t.Parallel()
	for target, want := range map[string]bool{
		"http://store/upload":             true,
		"http://store/modules/{name}.bin": false,
		"https://store/put?key={name}":    false,
	} {
		sink, err := New(registry.SinkConfig{Target: target})
		require.NoError(t, err)
		assert.Equal(t, want, sink.(registry.SingleTarget).SingleTarget(), target)
	}
}
