package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/batatacode/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Flag defaults come from the
// BATATACODE_* variables that getenv reports. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, getenv func(string) string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	env, err := loadEnv(getenv)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("batatacode", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
batatacode - compiles scripting modules into compact bit-packed programs.

Usage:
  batatacode [options] [MODULE_PATH]

Arguments:
  MODULE_PATH
    Path to a single .json or .hcl module, or a directory of modules.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Every option defaults from an environment variable named BATATACODE_ plus the
option name in upper case with dashes as underscores (e.g. BATATACODE_LOG_LEVEL).
`)
	}

	moduleFlag := flagSet.String("module", env.Module, "Path to the module file or directory.")
	mFlag := flagSet.String("m", "", "Path to the module file or directory (shorthand).")
	outFlag := flagSet.String("out", env.Out, "Sink target: output directory or .bin file for 'file', URL for 'http' and 'socketio'.")
	sinkFlag := flagSet.String("sink", env.Sink, "Where programs go. Options: 'stdout', 'file', 'http', 'socketio'.")
	logFormatFlag := flagSet.String("log-format", env.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", env.Workers, "Number of modules compiled concurrently.")
	timeoutFlag := flagSet.Duration("timeout", env.Timeout, "Timeout of one delivery to a network sink.")
	nsFlag := flagSet.String("socketio-namespace", env.SocketIONamespace, "socket.io namespace for the 'socketio' sink.")
	eventFlag := flagSet.String("socketio-event", env.SocketIOEvent, "Event the 'socketio' sink emits programs on.")
	ackFlag := flagSet.String("socketio-ack-event", env.SocketIOAckEvent, "Event the 'socketio' sink waits for after emitting.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else if *moduleFlag != "" {
		path = *moduleFlag
	}
	slog.Debug("Module path determined.", "path", path)

	if path == "" {
		slog.Debug("No module path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ModulePath:        path,
		OutPath:           *outFlag,
		Sink:              strings.ToLower(*sinkFlag),
		LogFormat:         logFormat,
		LogLevel:          logLevel,
		WorkerCount:       *workersFlag,
		Timeout:           *timeoutFlag,
		SocketIONamespace: *nsFlag,
		SocketIOEvent:     *eventFlag,
		SocketIOAckEvent:  *ackFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
