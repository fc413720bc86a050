package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/template"
)

// DirSource serves a template from a local directory.
type DirSource struct {
	root string
}

var _ template.Source = (*DirSource)(nil)

// NewDir constructs a DirSource rooted at path.
func NewDir(path string) *DirSource {
	return &DirSource{root: filepath.Clean(path)}
}

func (s *DirSource) Load(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return &template.FetchError{Template: s.root, Err: err}
	}
	if !info.IsDir() {
		return &template.FetchError{Template: s.root, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

func (s *DirSource) Files(_ context.Context) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: walk %q: %w", s.root, err)
	}
	return paths, nil
}

func (s *DirSource) Content(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &template.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("source: read %q: %w", path, err)
	}
	return data, nil
}

func (s *DirSource) Cleanup() error {
	return nil
}
