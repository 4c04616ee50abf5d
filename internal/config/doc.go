// Package config defines the format-agnostic Loader interface that turns a
// module file into the model value graph, and Loaders, which picks a loader
// by file extension. Concrete loaders for JSON and HCL live in their own
// packages.
package config
