package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/batatacode/internal/config"
	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loaders  config.Loaders
	config   *Config
}

// NewApp is the constructor for the main application. Program output goes to
// outW and logs to logW. When no modules are given the core sinks are
// registered. A registry that fails validation is a programmer error and
// panics.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders config.Loaders, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All sink modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}

	if loaders == nil {
		loaders = DefaultLoaders()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loaders:  loaders,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) newSink() (registry.Sink, error) {
	sink, err := a.registry.NewSink(a.config.Sink, registry.SinkConfig{
		Out:               a.outW,
		Target:            a.config.OutPath,
		Timeout:           a.config.Timeout,
		SocketIONamespace: a.config.SocketIONamespace,
		SocketIOEvent:     a.config.SocketIOEvent,
		SocketIOAckEvent:  a.config.SocketIOAckEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sink: %w", err)
	}
	return sink, nil
}
