package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vk/batatacode/internal/bytecode"
	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/fsutil"
	"github.com/vk/batatacode/internal/registry"
)

var (
	// ErrNoModules is returned when the module path holds no module files.
	ErrNoModules = errors.New("no module files found")
	// ErrDuplicateModuleName is returned when two module files differ only
	// by extension.
	ErrDuplicateModuleName = errors.New("duplicate module name")
	// ErrSingleTarget is returned when several modules would be delivered
	// to one destination.
	ErrSingleTarget = errors.New("output target holds a single module")
)

// Run compiles every module under the configured path and delivers the
// programs to the configured sink. Modules compile concurrently, bounded by
// the worker count; the first failure cancels the rest.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindFilesByExtension(a.config.ModulePath, a.loaders.Extensions()...)
	if err != nil {
		return fmt.Errorf("failed to discover modules: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoModules, a.config.ModulePath)
	}
	a.logger.Debug("Discovered module files.", "count", len(files))

	names, err := moduleNames(a.config.ModulePath, files)
	if err != nil {
		return err
	}

	sink, err := a.newSink()
	if err != nil {
		return err
	}
	if st, ok := sink.(registry.SingleTarget); ok && st.SingleTarget() && len(files) > 1 {
		_ = sink.Close()
		return fmt.Errorf("%w: %d modules found, use a directory or a {name} target with sink '%s'", ErrSingleTarget, len(files), a.config.Sink)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			a.logger.Warn("Failed to close sink.", "sink", a.config.Sink, "error", err)
		}
	}()

	var compiled atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, path := range files {
		g.Go(func() error {
			if err := a.compile(gctx, sink, path, names[i]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			compiled.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("Compilation finished.", "modules", compiled.Load(), "sink", a.config.Sink)
	return nil
}

// compile loads, encodes and delivers one module.
func (a *App) compile(ctx context.Context, sink registry.Sink, path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx = ctxlog.With(ctx, "module", path)
	logger := ctxlog.FromContext(ctx)

	m, err := a.loaders.Load(ctx, path)
	if err != nil {
		return err
	}

	program, err := bytecode.Encode(m)
	if err != nil {
		return err
	}
	logger.Info("Module compiled.",
		"lines", len(m.Handlers),
		"bits", program.Bits,
		"strings", len(program.Strings),
		"index_width", program.IndexWidth,
	)

	return sink.Deliver(ctx, registry.Output{
		Name:    name,
		Source:  path,
		Program: program,
	})
}

// moduleNames returns the name of every file, failing when two files share
// one.
func moduleNames(root string, files []string) ([]string, error) {
	names := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, path := range files {
		name := moduleName(root, path)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w '%s': %s and %s", ErrDuplicateModuleName, name, prev, path)
		}
		seen[name] = path
		names[i] = name
	}
	return names, nil
}

// moduleName returns path relative to root without its extension, with
// forward slashes. A root that is the file itself yields its base name.
func moduleName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
