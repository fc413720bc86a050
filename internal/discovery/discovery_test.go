package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-scaffold/internal/discovery"
	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const licenseDescriptor = `name: license-mit
version: 1.2.0
description: writes an MIT license stub
defaults:
  holder: Acme Inc
files:
  - path: LICENSE
    content: |
      MIT License for ${projectName}, (c) {{ holder }}
`

func TestDiscover_RegistersBuiltins(t *testing.T) {
	registry := plugin.NewRegistry()

	if err := discovery.Discover(registry, discovery.Options{}); err != nil {
		t.Fatalf("discover: %v", err)
	}

	for _, name := range []string{"gitignore", "editorconfig", "makefile", "ci", "openapi"} {
		if !registry.Has(name) {
			t.Errorf("builtin %q not registered", name)
		}
	}
}

func TestDiscover_LoadsDescriptorPlugins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "license.plugin.yaml"), []byte(licenseDescriptor), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	registry := plugin.NewRegistry()
	if err := discovery.Discover(registry, discovery.Options{PluginsDir: dir}); err != nil {
		t.Fatalf("discover: %v", err)
	}

	p, err := registry.Get("license-mit")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Version() != "1.2.0" {
		t.Fatalf("version = %q", p.Version())
	}

	rctx := render.Context{Name: "orders-api", OutputDir: t.TempDir()}
	config := plugin.MergeConfig(p.Defaults(), nil)
	if err := p.Apply(context.Background(), rctx, config); err != nil {
		t.Fatalf("apply: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rctx.OutputDir, "LICENSE"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "MIT License for orders-api, (c) Acme Inc\n"
	if string(data) != want {
		t.Fatalf("license = %q, want %q", data, want)
	}
}

func TestDiscover_InvalidDescriptorSkippedWithoutFailing(t *testing.T) {
	dir := t.TempDir()
	// Missing required version and files fields.
	if err := os.WriteFile(filepath.Join(dir, "broken.plugin.yaml"), []byte("name: broken\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	registry := plugin.NewRegistry()
	if err := discovery.Discover(registry, discovery.Options{PluginsDir: dir}); err != nil {
		t.Fatalf("discover: %v", err)
	}
	if registry.Has("broken") {
		t.Fatal("invalid descriptor should not register")
	}
}

func TestDiscover_MissingPluginsDirIsNotFatal(t *testing.T) {
	registry := plugin.NewRegistry()
	opts := discovery.Options{PluginsDir: filepath.Join(t.TempDir(), "absent")}

	if err := discovery.Discover(registry, opts); err != nil {
		t.Fatalf("discover: %v", err)
	}
}

func TestParseDescriptor_RejectsBadVersionAtRegistration(t *testing.T) {
	dir := t.TempDir()
	descriptor := `name: badver
version: not-semver
files:
  - path: x.txt
    content: x
`
	if err := os.WriteFile(filepath.Join(dir, "badver.plugin.yaml"), []byte(descriptor), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	registry := plugin.NewRegistry()
	if err := discovery.Discover(registry, discovery.Options{PluginsDir: dir}); err != nil {
		t.Fatalf("discover: %v", err)
	}
	if registry.Has("badver") {
		t.Fatal("descriptor with invalid semver should be skipped")
	}
}
