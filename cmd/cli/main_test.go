package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/batatacode/internal/registry"
)

func noEnv(string) string { return "" }

// brokenModule registers a sink whose name fails registry validation.
type brokenModule struct{}

func (brokenModule) Register(r *registry.Registry) {
	r.RegisterSink("Not Valid", func(registry.SinkConfig) (registry.Sink, error) { return nil, nil })
}

func writeModule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeModule(t, `{"handlers":[]}`)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, logs, []string{path}, noEnv, brokenModule{})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "Not Valid", "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"}, noEnv)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args, noEnv)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CompilesToStdout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeModule(t, `{"handlers":[{"type":"event","position":0,"operations":[]}]}`)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-log-level", "debug", path}, noEnv)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "main: ")
	require.Contains(t, out.String(), "0 strings")
	require.Contains(t, logs.String(), "Module compiled.")
}

func TestRun_ModuleError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeModule(t, `{"handlers":[{"type":"loop"}]}`)

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path}, noEnv)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "main.json")
}
