// Package makefile provides the built-in plugin that writes a Makefile
// with build, test and clean targets for the generated project.
package makefile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const Name = "makefile"

const contentTemplate = `PROJECT := {{ name }}

.PHONY: build test clean

build:
	@echo "building $(PROJECT)"

test:
	@echo "testing $(PROJECT)"

clean:
	rm -rf dist
`

type makefilePlugin struct {
	engine *render.Engine
}

// New returns the makefile plugin.
func New() plugin.Plugin {
	return &makefilePlugin{engine: render.NewEngine()}
}

func (*makefilePlugin) Name() string             { return Name }
func (*makefilePlugin) Version() string          { return "1.0.0" }
func (*makefilePlugin) Description() string      { return "writes a Makefile with build/test/clean targets" }
func (*makefilePlugin) Dependencies() []string   { return nil }
func (*makefilePlugin) Defaults() map[string]any { return nil }

func (p *makefilePlugin) Apply(_ context.Context, rctx render.Context, _ map[string]any) error {
	content, _ := p.engine.RenderContent(contentTemplate, rctx)

	path := filepath.Join(rctx.OutputDir, "Makefile")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("makefile: write %q: %w", path, err)
	}
	return nil
}
