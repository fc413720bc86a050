package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

// Descriptor is a declarative plugin definition loaded from a
// *.plugin.yaml file. Paths and contents may carry placeholder forms;
// they are rendered against the run's context before writing.
type Descriptor struct {
	Name         string         `yaml:"name"`
	Version      string         `yaml:"version"`
	Description  string         `yaml:"description"`
	Dependencies []string       `yaml:"dependencies"`
	Defaults     map[string]any `yaml:"defaults"`
	Files        []FileAction   `yaml:"files"`
}

// FileAction writes or appends one file relative to the output root.
type FileAction struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
	Append  bool   `yaml:"append"`
}

// ParseDescriptor validates and decodes descriptor bytes.
func ParseDescriptor(data []byte) (Descriptor, error) {
	if err := validateDescriptor(data); err != nil {
		return Descriptor{}, err
	}
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("discovery: parse descriptor: %w", err)
	}
	return d, nil
}

// descriptorPlugin adapts a Descriptor to the plugin.Plugin contract.
type descriptorPlugin struct {
	descriptor Descriptor
	engine     *render.Engine
}

var _ plugin.Plugin = (*descriptorPlugin)(nil)

// NewDescriptorPlugin wraps a parsed descriptor.
func NewDescriptorPlugin(d Descriptor) plugin.Plugin {
	return &descriptorPlugin{
		descriptor: d,
		engine:     render.NewEngine(),
	}
}

func (p *descriptorPlugin) Name() string           { return p.descriptor.Name }
func (p *descriptorPlugin) Version() string        { return p.descriptor.Version }
func (p *descriptorPlugin) Description() string    { return p.descriptor.Description }
func (p *descriptorPlugin) Dependencies() []string { return p.descriptor.Dependencies }

func (p *descriptorPlugin) Defaults() map[string]any { return p.descriptor.Defaults }

func (p *descriptorPlugin) Apply(_ context.Context, rctx render.Context, config map[string]any) error {
	// File actions see the merged config through the context vars.
	vars := rctx
	vars.Vars = plugin.MergeConfig(rctx.Vars, config)

	for _, action := range p.descriptor.Files {
		relPath, _ := p.engine.RenderPath(action.Path, vars)
		content, _ := p.engine.RenderContent(action.Content, vars)

		outPath := filepath.Join(rctx.OutputDir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("discovery: plugin %q: create directory for %q: %w", p.descriptor.Name, relPath, err)
		}
		if err := writeAction(outPath, []byte(content), action.Append); err != nil {
			return fmt.Errorf("discovery: plugin %q: write %q: %w", p.descriptor.Name, relPath, err)
		}
	}
	return nil
}

func writeAction(path string, content []byte, appendMode bool) error {
	if !appendMode {
		return os.WriteFile(path, content, 0o644)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(content)
	return err
}
