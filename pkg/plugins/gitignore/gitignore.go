// Package gitignore provides the built-in plugin that writes a
// .gitignore matched to the project's toolchain profile.
package gitignore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const Name = "gitignore"

var profiles = map[string]string{
	"go": `bin/
dist/
*.test
*.out
.env
`,
	"java": `target/
build/
*.class
*.jar
.gradle/
.env
`,
	"node": `node_modules/
dist/
npm-debug.log*
.env
`,
	"generic": `dist/
*.log
.env
`,
}

type gitignorePlugin struct{}

// New returns the gitignore plugin.
func New() plugin.Plugin {
	return gitignorePlugin{}
}

func (gitignorePlugin) Name() string           { return Name }
func (gitignorePlugin) Version() string        { return "1.0.0" }
func (gitignorePlugin) Description() string    { return "writes a .gitignore for the selected profile" }
func (gitignorePlugin) Dependencies() []string { return nil }

func (gitignorePlugin) Defaults() map[string]any {
	return map[string]any{"profile": "generic"}
}

func (gitignorePlugin) Apply(_ context.Context, rctx render.Context, config map[string]any) error {
	profile, _ := config["profile"].(string)
	content, ok := profiles[profile]
	if !ok {
		return fmt.Errorf("gitignore: unknown profile %q", profile)
	}

	path := filepath.Join(rctx.OutputDir, ".gitignore")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("gitignore: write %q: %w", path, err)
	}
	return nil
}
