package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/pkg/orchestrator"
	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/testsupport"
)

func simpleSource() *testsupport.MemorySource {
	return testsupport.NewMemorySource("basic", map[string]string{
		"README.md": "# ${projectName}\n",
		"main.go":   "package main\n",
	})
}

func TestGenerate_MaterializesAndAppliesInOrder(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "ci", Deps: []string{"makefile"}, Recorder: recorder})
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "makefile", Recorder: recorder})
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "gitignore", Recorder: recorder})

	rctx := render.Context{
		Name:      "orders-api",
		OutputDir: t.TempDir(),
		Plugins:   []string{"ci", "gitignore"},
	}

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  simpleSource(),
		Context: rctx,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rctx.OutputDir, "README.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "# orders-api\n" {
		t.Fatalf("readme = %q", data)
	}

	want := []string{"makefile", "ci", "gitignore"}
	if diff := cmp.Diff(want, recorder.Applied()); diff != "" {
		t.Fatalf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_FetchFailureIsFatal(t *testing.T) {
	src := simpleSource()
	src.LoadErr = errors.New("network down")

	gen := orchestrator.New()
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  src,
		Context: render.Context{Name: "x", OutputDir: t.TempDir()},
	})
	if err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestGenerate_MissingDependencyFailsBeforeApply(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "ci", Deps: []string{"ghost"}, Recorder: recorder})

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  simpleSource(),
		Context: render.Context{Name: "x", OutputDir: t.TempDir(), Plugins: []string{"ci"}},
	})

	var missing *plugin.MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingDependencyError", err)
	}
	if applied := recorder.Applied(); len(applied) != 0 {
		t.Fatalf("plugins applied despite validation failure: %v", applied)
	}
}

func TestGenerate_CycleFailsBeforeApply(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "a", Deps: []string{"b"}, Recorder: recorder})
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "b", Deps: []string{"a"}, Recorder: recorder})

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  simpleSource(),
		Context: render.Context{Name: "x", OutputDir: t.TempDir(), Plugins: []string{"a"}},
	})

	var cycle *plugin.CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("err = %v, want CycleError", err)
	}
	if applied := recorder.Applied(); len(applied) != 0 {
		t.Fatalf("plugins applied despite cycle: %v", applied)
	}
}

func TestGenerate_ApplyFailureStopsRemainingPlugins(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "first", Recorder: recorder, ApplyErr: errors.New("boom")})
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "second", Recorder: recorder})

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  simpleSource(),
		Context: render.Context{Name: "x", OutputDir: t.TempDir(), Plugins: []string{"first", "second"}},
	})
	if err == nil {
		t.Fatal("expected apply failure")
	}

	want := []string{"first"}
	if diff := cmp.Diff(want, recorder.Applied()); diff != "" {
		t.Fatalf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_UnknownRequestedPluginSkipped(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{PluginName: "known", Recorder: recorder})

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source:  simpleSource(),
		Context: render.Context{Name: "x", OutputDir: t.TempDir(), Plugins: []string{"ghost", "known"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{"known"}
	if diff := cmp.Diff(want, recorder.Applied()); diff != "" {
		t.Fatalf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_PluginConfigMergesDefaultsAndVars(t *testing.T) {
	var seen map[string]any
	registry := plugin.NewRegistry()
	registry.MustRegister(&testsupport.StubPlugin{
		PluginName: "configured",
		Config:     map[string]any{"profile": "go", "strict": true},
		OnApply: func(_ context.Context, _ render.Context, config map[string]any) error {
			seen = config
			return nil
		},
	})

	gen := orchestrator.New(orchestrator.WithRegistry(registry))
	err := gen.Generate(context.Background(), orchestrator.Request{
		Source: simpleSource(),
		Context: render.Context{
			Name:      "x",
			OutputDir: t.TempDir(),
			Plugins:   []string{"configured"},
			Vars:      map[string]any{"profile": "java"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := map[string]any{"profile": "java", "strict": true}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_DiscoveryHookRunsOnce(t *testing.T) {
	recorder := &testsupport.ApplyRecorder{}
	runs := 0
	gen := orchestrator.New(orchestrator.WithDiscovery(func(registry *plugin.Registry) error {
		runs++
		return registry.Register(&testsupport.StubPlugin{PluginName: "discovered", Recorder: recorder})
	}))

	for i := 0; i < 2; i++ {
		err := gen.Generate(context.Background(), orchestrator.Request{
			Source:  simpleSource(),
			Context: render.Context{Name: "x", OutputDir: t.TempDir(), Plugins: []string{"discovered"}},
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
	}

	if runs != 1 {
		t.Fatalf("discovery ran %d times, want 1", runs)
	}
	want := []string{"discovered", "discovered"}
	if diff := cmp.Diff(want, recorder.Applied()); diff != "" {
		t.Fatalf("apply order mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ManifestVarsSeedContext(t *testing.T) {
	src := testsupport.NewMemorySource("manifested", map[string]string{
		"scaffold.yaml": "name: java-service\nvars:\n  port: 8080\n",
		"app.yaml":      "port: {{ port }}\n",
	})

	rctx := render.Context{Name: "orders-api", OutputDir: t.TempDir()}
	gen := orchestrator.New()
	if err := gen.Generate(context.Background(), orchestrator.Request{Source: src, Context: rctx}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rctx.OutputDir, "app.yaml"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "port: 8080\n" {
		t.Fatalf("content = %q", data)
	}
}
