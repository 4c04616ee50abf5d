package app

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied by the command line when neither a flag nor the
// environment sets a value.
const (
	DefaultWorkerCount = 4
	DefaultTimeout     = 10 * time.Second
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModulePath string // a module file or a directory of modules
	OutPath    string // sink target: directory, file or URL
	Sink       string

	LogFormat   string
	LogLevel    string
	WorkerCount int
	Timeout     time.Duration

	SocketIONamespace string
	SocketIOEvent     string
	SocketIOAckEvent  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModulePath == "" {
		return nil, errors.New("ModulePath is a required configuration field and cannot be empty")
	}
	if cfg.Sink == "" {
		return nil, errors.New("Sink is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("Timeout must be positive, got %s", cfg.Timeout)
	}
	return &cfg, nil
}
