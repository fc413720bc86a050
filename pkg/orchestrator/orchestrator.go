package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/generator"
	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a pre-populated plugin registry.
func WithRegistry(registry *plugin.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithEngine injects a custom placeholder engine.
func WithEngine(engine *render.Engine) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithGenerator injects a custom template generator.
func WithGenerator(gen *generator.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = gen
	}
}

// WithLogger attaches a logger used across the pipeline stages.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithDiscovery registers a hook that populates the plugin registry
// before the first generation run.
func WithDiscovery(discover func(*plugin.Registry) error) Option {
	return func(o *Orchestrator) {
		o.discover = discover
	}
}

// Orchestrator sequences template materialization and plugin
// application. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Orchestrator struct {
	registry  *plugin.Registry
	engine    *render.Engine
	generator *generator.Generator
	logger    zerolog.Logger

	discover   func(*plugin.Registry) error
	discovered bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.engine == nil {
		o.engine = render.NewEngine(render.WithLogger(o.logger))
	}
	if o.generator == nil {
		o.generator = generator.New(generator.WithEngine(o.engine), generator.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = plugin.NewRegistry()
	}
	return o
}

// Registry exposes the plugin registry so discovery can populate it
// before Generate runs.
func (o *Orchestrator) Registry() *plugin.Registry {
	return o.registry
}

// Request describes the inputs for one generation run.
type Request struct {
	// Source supplies the template's file tree.
	Source template.Source

	// Context is the substitution environment. Its Plugins field lists
	// the requested plugin names in priority order.
	Context render.Context
}

// Generate executes load -> materialize -> validate -> resolve -> apply.
// Dependency validation and cycle detection run before any plugin's
// Apply; a failing Apply stops immediately with no rollback of earlier
// plugins or written files.
func (o *Orchestrator) Generate(ctx context.Context, req Request) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Source == nil {
		return errors.New("orchestrator: template source is required")
	}

	if o.discover != nil && !o.discovered {
		if err := o.discover(o.registry); err != nil {
			return fmt.Errorf("orchestrator: discover plugins: %w", err)
		}
		o.discovered = true
	}

	if err := req.Source.Load(ctx); err != nil {
		return fmt.Errorf("orchestrator: load template: %w", err)
	}
	defer func() {
		if err := req.Source.Cleanup(); err != nil {
			o.logger.Warn().Err(err).Msg("template source cleanup failed")
		}
	}()

	rctx, err := o.seedContext(ctx, req)
	if err != nil {
		return err
	}

	if err := o.generator.Generate(ctx, rctx, req.Source); err != nil {
		return fmt.Errorf("orchestrator: materialize template: %w", err)
	}

	return o.applyPlugins(ctx, rctx)
}

// seedContext merges template manifest var defaults under the request's
// context vars. Context-supplied values win.
func (o *Orchestrator) seedContext(ctx context.Context, req Request) (render.Context, error) {
	rctx := req.Context

	manifest, err := template.LoadManifest(ctx, req.Source)
	if err != nil {
		return render.Context{}, fmt.Errorf("orchestrator: template manifest: %w", err)
	}
	if len(manifest.Vars) > 0 {
		rctx.Vars = plugin.MergeConfig(manifest.Vars, rctx.Vars)
	}
	if rctx.TemplateName == "" {
		rctx.TemplateName = manifest.Name
	}
	return rctx, nil
}

func (o *Orchestrator) applyPlugins(ctx context.Context, rctx render.Context) error {
	if len(rctx.Plugins) == 0 {
		return nil
	}

	for _, name := range rctx.Plugins {
		if !o.registry.Has(name) {
			o.logger.Warn().Str("plugin", name).Msg("requested plugin is not registered; skipping")
			continue
		}
		if err := o.registry.ValidateDependencies(name); err != nil {
			return fmt.Errorf("orchestrator: validate plugin %q: %w", name, err)
		}
	}

	order, err := o.registry.Resolve(rctx.Plugins)
	if err != nil {
		return fmt.Errorf("orchestrator: resolve plugin order: %w", err)
	}

	for _, name := range order {
		p, err := o.registry.Get(name)
		if err != nil {
			return fmt.Errorf("orchestrator: plugin %q: %w", name, err)
		}
		config := plugin.MergeConfig(p.Defaults(), rctx.Vars)
		o.logger.Info().Str("plugin", name).Str("version", p.Version()).Msg("applying plugin")
		if err := p.Apply(ctx, rctx, config); err != nil {
			return fmt.Errorf("orchestrator: apply plugin %q: %w", name, err)
		}
	}
	return nil
}
