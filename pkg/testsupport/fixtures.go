// Package testsupport provides shared fixtures for contract tests: an
// in-memory template source and a configurable stub plugin that records
// the order it was applied in.
package testsupport

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// MemorySource is a template.Source backed by a path->bytes map. Files
// is restartable and returns paths in sorted order for deterministic
// tests. LoadErr, when set, is returned from Load wrapped in a
// FetchError.
type MemorySource struct {
	Name    string
	Entries map[string][]byte
	LoadErr error

	loaded bool
}

// Ensure the fixture satisfies the public interface.
var _ template.Source = (*MemorySource)(nil)

// NewMemorySource builds a source from string contents.
func NewMemorySource(name string, entries map[string]string) *MemorySource {
	raw := make(map[string][]byte, len(entries))
	for path, content := range entries {
		raw[path] = []byte(content)
	}
	return &MemorySource{Name: name, Entries: raw}
}

func (s *MemorySource) Load(_ context.Context) error {
	if s.LoadErr != nil {
		return &template.FetchError{Template: s.Name, Err: s.LoadErr}
	}
	s.loaded = true
	return nil
}

func (s *MemorySource) Files(_ context.Context) ([]string, error) {
	paths := make([]string, 0, len(s.Entries))
	for path := range s.Entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *MemorySource) Content(_ context.Context, path string) ([]byte, error) {
	content, ok := s.Entries[path]
	if !ok {
		return nil, &template.NotFoundError{Path: path}
	}
	return append([]byte(nil), content...), nil
}

func (s *MemorySource) Cleanup() error {
	s.loaded = false
	return nil
}

// ApplyRecorder collects plugin application order across a test run.
type ApplyRecorder struct {
	mu      sync.Mutex
	applied []string
}

// Record appends a plugin name to the recorded order.
func (r *ApplyRecorder) Record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, name)
}

// Applied returns a copy of the recorded order.
func (r *ApplyRecorder) Applied() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.applied...)
}

// StubPlugin is a configurable plugin.Plugin for registry and
// orchestrator tests.
type StubPlugin struct {
	PluginName    string
	PluginVersion string
	Deps          []string
	Config        map[string]any
	ApplyErr      error
	Recorder      *ApplyRecorder

	// OnApply, when set, runs after recording and before returning
	// ApplyErr. The merged config is passed through.
	OnApply func(ctx context.Context, rctx render.Context, config map[string]any) error
}

var _ plugin.Plugin = (*StubPlugin)(nil)

func (p *StubPlugin) Name() string        { return p.PluginName }
func (p *StubPlugin) Description() string { return "stub plugin " + p.PluginName }

func (p *StubPlugin) Version() string {
	if p.PluginVersion == "" {
		return "0.1.0"
	}
	return p.PluginVersion
}

func (p *StubPlugin) Dependencies() []string { return p.Deps }

func (p *StubPlugin) Defaults() map[string]any { return p.Config }

func (p *StubPlugin) Apply(ctx context.Context, rctx render.Context, config map[string]any) error {
	if p.Recorder != nil {
		p.Recorder.Record(p.PluginName)
	}
	if p.OnApply != nil {
		if err := p.OnApply(ctx, rctx, config); err != nil {
			return err
		}
	}
	return p.ApplyErr
}
