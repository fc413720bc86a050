// Package editorconfig provides the built-in plugin that writes a
// baseline .editorconfig.
package editorconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const Name = "editorconfig"

const content = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
indent_style = space
indent_size = 4

[Makefile]
indent_style = tab

[*.{yaml,yml,json}]
indent_size = 2
`

type editorconfigPlugin struct{}

// New returns the editorconfig plugin.
func New() plugin.Plugin {
	return editorconfigPlugin{}
}

func (editorconfigPlugin) Name() string             { return Name }
func (editorconfigPlugin) Version() string          { return "1.0.0" }
func (editorconfigPlugin) Description() string      { return "writes a baseline .editorconfig" }
func (editorconfigPlugin) Dependencies() []string   { return nil }
func (editorconfigPlugin) Defaults() map[string]any { return nil }

func (editorconfigPlugin) Apply(_ context.Context, rctx render.Context, _ map[string]any) error {
	path := filepath.Join(rctx.OutputDir, ".editorconfig")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("editorconfig: write %q: %w", path, err)
	}
	return nil
}
