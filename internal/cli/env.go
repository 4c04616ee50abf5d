package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vk/batatacode/internal/app"
)

// EnvPrefix prefixes every environment variable Parse reads.
const EnvPrefix = "BATATACODE_"

// envDefaults holds flag defaults after environment overrides.
type envDefaults struct {
	Module            string
	Out               string
	Sink              string
	LogFormat         string
	LogLevel          string
	Workers           int
	Timeout           time.Duration
	SocketIONamespace string
	SocketIOEvent     string
	SocketIOAckEvent  string
}

func loadEnv(getenv func(string) string) (envDefaults, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	lookup := func(name, fallback string) string {
		if v := getenv(EnvPrefix + name); v != "" {
			return v
		}
		return fallback
	}

	d := envDefaults{
		Module:            lookup("MODULE", ""),
		Out:               lookup("OUT", ""),
		Sink:              lookup("SINK", "stdout"),
		LogFormat:         lookup("LOG_FORMAT", "text"),
		LogLevel:          lookup("LOG_LEVEL", "info"),
		SocketIONamespace: lookup("SOCKETIO_NAMESPACE", ""),
		SocketIOEvent:     lookup("SOCKETIO_EVENT", ""),
		SocketIOAckEvent:  lookup("SOCKETIO_ACK_EVENT", ""),
	}

	workers, err := strconv.Atoi(lookup("WORKERS", strconv.Itoa(app.DefaultWorkerCount)))
	if err != nil {
		return envDefaults{}, fmt.Errorf("invalid %sWORKERS: %w", EnvPrefix, err)
	}
	d.Workers = workers

	timeout, err := time.ParseDuration(lookup("TIMEOUT", app.DefaultTimeout.String()))
	if err != nil {
		return envDefaults{}, fmt.Errorf("invalid %sTIMEOUT: %w", EnvPrefix, err)
	}
	d.Timeout = timeout

	return d, nil
}
