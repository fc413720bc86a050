// Package scaffold generates projects from templates and applies
// dependency-ordered plugins. This root package re-exports the pieces
// most callers need so a generation run is a single constructor call
// plus Generate.
package scaffold

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-scaffold/internal/source"
	"github.com/goliatone/go-scaffold/pkg/orchestrator"
	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// Context is the substitution environment for one generation run.
type Context = render.Context

// Plugin is the unit of post-generation transformation.
type Plugin = plugin.Plugin

// Source supplies a template's file tree.
type Source = template.Source

// NewOrchestrator exposes the orchestrator constructor from the
// top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *plugin.Registry {
	return plugin.NewRegistry()
}

// SourceFromDir returns a Source reading a template from a local
// directory.
func SourceFromDir(path string) Source {
	return source.NewDir(path)
}

// SourceFromFS returns a Source reading a template from an fs.FS. The
// name only labels errors.
func SourceFromFS(name string, fsys fs.FS) Source {
	return source.NewFS(name, fsys)
}

// SourceFromGit returns a Source that shallow-clones a repository into
// a temporary staging directory. Ref is an optional branch or tag.
func SourceFromGit(url, ref string) Source {
	return source.NewGit(url, ref)
}

// Generate materializes the template and applies the context's
// requested plugins in dependency order. It is the simplest entry point
// for callers that do not need custom wiring.
func Generate(ctx context.Context, src Source, rctx Context, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:  src,
		Context: rctx,
	})
}
