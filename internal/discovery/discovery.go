// Package discovery populates a plugin registry before generation: the
// fixed built-in set first, then declarative descriptor plugins from a
// configured local directory. Discovery runs once; the registry is
// read-only afterwards.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/plugins/ci"
	"github.com/goliatone/go-scaffold/pkg/plugins/editorconfig"
	"github.com/goliatone/go-scaffold/pkg/plugins/gitignore"
	"github.com/goliatone/go-scaffold/pkg/plugins/makefile"
	"github.com/goliatone/go-scaffold/pkg/plugins/openapi"
)

// descriptorSuffix marks descriptor plugin files inside the plugins
// directory.
const descriptorSuffix = ".plugin.yaml"

// Options configures a discovery run.
type Options struct {
	// PluginsDir is an optional directory scanned for *.plugin.yaml
	// descriptor files. A missing directory is not an error.
	PluginsDir string

	Logger zerolog.Logger
}

// Builtins returns the fixed built-in plugin set.
func Builtins() []plugin.Plugin {
	return []plugin.Plugin{
		gitignore.New(),
		editorconfig.New(),
		makefile.New(),
		ci.New(),
		openapi.New(),
	}
}

// Discover registers built-ins and any descriptor plugins found under
// opts.PluginsDir. A descriptor that fails to load or register is
// skipped with a warning; duplicate built-in registration is a
// programming error and fails hard.
func Discover(registry *plugin.Registry, opts Options) error {
	if registry == nil {
		return fmt.Errorf("discovery: registry is required")
	}

	for _, p := range Builtins() {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("discovery: register builtin %q: %w", p.Name(), err)
		}
	}

	if opts.PluginsDir == "" {
		return nil
	}
	return loadDescriptors(registry, opts)
}

func loadDescriptors(registry *plugin.Registry, opts Options) error {
	entries, err := os.ReadDir(opts.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			opts.Logger.Debug().Str("dir", opts.PluginsDir).Msg("plugins directory absent; skipping")
			return nil
		}
		return fmt.Errorf("discovery: read plugins dir %q: %w", opts.PluginsDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), descriptorSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(opts.PluginsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			opts.Logger.Warn().Err(err).Str("descriptor", path).Msg("skipping unreadable plugin descriptor")
			continue
		}
		descriptor, err := ParseDescriptor(data)
		if err != nil {
			opts.Logger.Warn().Err(err).Str("descriptor", path).Msg("skipping invalid plugin descriptor")
			continue
		}
		if err := registry.Register(NewDescriptorPlugin(descriptor)); err != nil {
			opts.Logger.Warn().Err(err).Str("descriptor", path).Msg("skipping unregistrable plugin descriptor")
			continue
		}
		opts.Logger.Debug().Str("plugin", descriptor.Name).Str("descriptor", path).Msg("descriptor plugin registered")
	}
	return nil
}
