// Package registry provides the central "glue" for the output sinks.
//
// Every sink lives in its own module package under modules/ and registers a
// factory under a name (e.g. "stdout", "file"). The application builds the
// sink selected on the command line through the registry, so adding a sink
// never touches the compile pipeline. The registry is validated once at
// startup; a broken registration is a programmer error.
package registry
