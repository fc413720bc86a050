package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// Option customises a Generator.
type Option func(*Generator)

// WithEngine injects a pre-configured placeholder engine.
func WithEngine(engine *render.Engine) Option {
	return func(g *Generator) {
		g.engine = engine
	}
}

// WithLogger attaches a logger for per-file progress and warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator writes a template's files under the context's output root.
type Generator struct {
	engine *render.Engine
	logger zerolog.Logger
}

// New constructs a Generator, defaulting the engine when none is given.
func New(options ...Option) *Generator {
	g := &Generator{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.engine == nil {
		g.engine = render.NewEngine(render.WithLogger(g.logger))
	}
	return g
}

// Generate materializes every file the source lists. For each file the
// relative path is rewritten, parent directories are created (idempotent
// across re-runs), and the content is either rendered (text) or copied
// verbatim (binary). Files are always overwritten. The first failure
// aborts with the offending relative path in the error; unresolved
// placeholder references only warn.
func (g *Generator) Generate(ctx context.Context, rctx render.Context, src template.Source) error {
	if ctx == nil {
		return errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if src == nil {
		return errors.New("generator: template source is required")
	}
	if rctx.OutputDir == "" {
		return errors.New("generator: output directory is required")
	}

	files, err := src.Files(ctx)
	if err != nil {
		return fmt.Errorf("generator: list template files: %w", err)
	}

	for _, relPath := range files {
		if relPath == template.ManifestFileName {
			continue
		}
		if err := g.writeFile(ctx, rctx, src, relPath); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeFile(ctx context.Context, rctx render.Context, src template.Source, relPath string) error {
	outRel, _ := g.engine.RenderPath(relPath, rctx)

	raw, err := src.Content(ctx, relPath)
	if err != nil {
		return fmt.Errorf("generator: read %q: %w", relPath, err)
	}

	data := raw
	if IsTextFile(outRel) {
		if utf8.Valid(raw) {
			rendered, _ := g.engine.RenderContent(string(raw), rctx)
			data = []byte(rendered)
		} else {
			g.logger.Warn().Str("file", relPath).Msg("text-classified file is not valid UTF-8; copying verbatim")
		}
	}

	outPath := filepath.Join(rctx.OutputDir, filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("generator: create directory for %q: %w", outRel, err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("generator: write %q: %w", outRel, err)
	}

	g.logger.Debug().Str("file", outRel).Int("bytes", len(data)).Msg("file written")
	return nil
}
