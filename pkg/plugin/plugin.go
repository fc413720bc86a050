package plugin

import (
	"context"

	"github.com/goliatone/go-scaffold/pkg/render"
)

// Plugin is a named, versioned capability unit applied to a generated
// project. Plugins are stateless value-like objects: the registry never
// mutates them after registration, and Apply must not mutate the context
// fields the placeholder engine consumes.
type Plugin interface {
	Name() string
	Version() string
	Description() string

	// Dependencies returns the names of plugins that must be applied
	// before this one, in declared order.
	Dependencies() []string

	// Defaults returns the plugin's default configuration. Context vars
	// override these on key collision.
	Defaults() map[string]any

	// Apply mutates the generated project. A non-nil error aborts the
	// remaining plugin applications; already-applied plugins are not
	// rolled back.
	Apply(ctx context.Context, rctx render.Context, config map[string]any) error
}

// MergeConfig overlays context-level values onto a plugin's defaults.
// Neither input map is mutated.
func MergeConfig(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}
