package registry

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/batatacode/internal/ctxlog"
)

var sinkName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateRegistry checks that at least one sink is registered and that every
// sink name is usable on the command line.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	if len(r.sinks) == 0 {
		errs = append(errs, "no sinks registered")
	}
	for name, factory := range r.sinks {
		if !sinkName.MatchString(name) {
			errs = append(errs, fmt.Sprintf("sink '%s': name must be lower snake case", name))
		}
		if factory == nil {
			errs = append(errs, fmt.Sprintf("sink '%s': factory is nil", name))
		}
	}

	if len(errs) > 0 {
		return errors.New("registry validation failed:\n - " + strings.Join(errs, "\n - "))
	}
	logger.Debug("Registry validation successful.", "sinks", r.Sinks())
	return nil
}
