// Package ci provides the built-in plugin that writes a GitHub Actions
// workflow driving the Makefile targets. It depends on the makefile
// plugin so the targets it invokes exist.
package ci

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/plugins/makefile"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const Name = "ci"

const workflowTemplate = `name: ci

on:
  push:
    branches: [{{ branch }}]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - name: Build
        run: make build
      - name: Test
        run: make test
`

type ciPlugin struct {
	engine *render.Engine
}

// New returns the ci plugin.
func New() plugin.Plugin {
	return &ciPlugin{engine: render.NewEngine()}
}

func (*ciPlugin) Name() string        { return Name }
func (*ciPlugin) Version() string     { return "1.0.0" }
func (*ciPlugin) Description() string { return "writes a GitHub Actions workflow invoking make targets" }

func (*ciPlugin) Dependencies() []string {
	return []string{makefile.Name}
}

func (*ciPlugin) Defaults() map[string]any {
	return map[string]any{"branch": "main"}
}

func (p *ciPlugin) Apply(_ context.Context, rctx render.Context, config map[string]any) error {
	vars := rctx
	vars.Vars = plugin.MergeConfig(rctx.Vars, config)

	content, _ := p.engine.RenderContent(workflowTemplate, vars)

	dir := filepath.Join(rctx.OutputDir, ".github", "workflows")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ci: create %q: %w", dir, err)
	}
	path := filepath.Join(dir, "ci.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("ci: write %q: %w", path, err)
	}
	return nil
}
