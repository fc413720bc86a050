// Package config loads CLI configuration through a koanf chain:
// embedded defaults, then the first scaffold config file found, then
// SCAFFOLD_ environment variables. Later layers win.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yaml
var defaultConfig []byte

// Config is the resolved CLI configuration.
type Config struct {
	// TemplatesDir is where local templates are looked up by name.
	TemplatesDir string `koanf:"templates_dir"`

	// PluginsDir is scanned for descriptor plugins during discovery.
	PluginsDir string `koanf:"plugins_dir"`

	// DefaultPlugins are requested on every run ahead of CLI-supplied
	// plugin names.
	DefaultPlugins []string `koanf:"default_plugins"`

	// Verbosity is the default log verbosity; -v flags add to it.
	Verbosity int `koanf:"verbosity"`
}

// Load resolves configuration. When path is empty the working directory
// is searched for .scaffold.yaml then scaffold.yaml; a missing config
// file is not an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawBytesProvider{defaultConfig}, koanfyaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if resolved := resolvePath(path); resolved != "" {
		if err := k.Load(file.Provider(resolved), koanfyaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", resolved, err)
		}
	}

	envProvider := env.Provider("SCAFFOLD_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "SCAFFOLD_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func resolvePath(path string) string {
	if path != "" {
		return path
	}
	for _, name := range []string{".scaffold.yaml", "scaffold.yaml"} {
		candidate := filepath.Join(".", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (p rawBytesProvider) ReadBytes() ([]byte, error) {
	return p.bytes, nil
}

func (p rawBytesProvider) Read() (map[string]any, error) {
	return nil, fmt.Errorf("config: raw bytes provider does not support Read")
}
