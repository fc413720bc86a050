package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-scaffold/pkg/template"
)

// FSSource serves a template from any fs.FS, which keeps embedded
// templates and fstest.MapFS fixtures on the same code path as real
// directories.
type FSSource struct {
	name string
	fsys fs.FS
}

var _ template.Source = (*FSSource)(nil)

// NewFS constructs an FSSource. The name is used in error messages only.
func NewFS(name string, fsys fs.FS) *FSSource {
	return &FSSource{name: name, fsys: fsys}
}

func (s *FSSource) Load(_ context.Context) error {
	if s.fsys == nil {
		return &template.FetchError{Template: s.name, Err: errors.New("nil filesystem")}
	}
	return nil
}

func (s *FSSource) Files(_ context.Context) ([]string, error) {
	var paths []string
	err := fs.WalkDir(s.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: walk %q: %w", s.name, err)
	}
	return paths, nil
}

func (s *FSSource) Content(_ context.Context, path string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &template.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("source: read %q: %w", path, err)
	}
	return data, nil
}

func (s *FSSource) Cleanup() error {
	return nil
}
