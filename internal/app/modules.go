package app

import (
	"github.com/vk/batatacode/internal/config"
	"github.com/vk/batatacode/internal/hcl"
	"github.com/vk/batatacode/internal/jsonloader"
	"github.com/vk/batatacode/internal/registry"
	"github.com/vk/batatacode/modules/file"
	"github.com/vk/batatacode/modules/http_upload"
	"github.com/vk/batatacode/modules/print"
	"github.com/vk/batatacode/modules/socketio"
)

// coreModules is the definitive list of all sink modules that are compiled
// into the batatacode binary.
var coreModules = []registry.Module{
	&print.Module{},
	&file.Module{},
	&http_upload.Module{},
	&socketio.Module{},
}

// DefaultLoaders returns the module loaders keyed by file extension.
func DefaultLoaders() config.Loaders {
	return config.Loaders{
		".json": jsonloader.NewLoader(),
		".hcl":  hcl.NewLoader(),
	}
}
