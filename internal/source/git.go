package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-scaffold/pkg/template"
)

// GitSource stages a template by shallow-cloning a repository into a
// temporary directory. Cleanup removes the staging directory.
type GitSource struct {
	url string
	ref string

	staging *DirSource
	tempDir string
}

var _ template.Source = (*GitSource)(nil)

// NewGit constructs a GitSource for the given repository URL. Ref is an
// optional branch or tag.
func NewGit(url, ref string) *GitSource {
	return &GitSource{url: url, ref: ref}
}

func (s *GitSource) Load(ctx context.Context) error {
	if s.url == "" {
		return &template.FetchError{Template: s.url, Err: fmt.Errorf("empty repository url")}
	}

	tempDir, err := os.MkdirTemp("", "scaffold-template-*")
	if err != nil {
		return &template.FetchError{Template: s.url, Err: fmt.Errorf("create staging dir: %w", err)}
	}

	args := []string{"clone", "--depth", "1"}
	if s.ref != "" {
		args = append(args, "--branch", s.ref)
	}
	args = append(args, s.url, tempDir)

	cmd := exec.CommandContext(ctx, "git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tempDir)
		return &template.FetchError{
			Template: s.url,
			Err:      fmt.Errorf("git clone: %w: %s", err, strings.TrimSpace(string(output))),
		}
	}

	// The clone's metadata is not part of the template tree.
	_ = os.RemoveAll(filepath.Join(tempDir, ".git"))

	s.tempDir = tempDir
	s.staging = NewDir(tempDir)
	return nil
}

func (s *GitSource) Files(ctx context.Context) ([]string, error) {
	if s.staging == nil {
		return nil, fmt.Errorf("source: git template %q not loaded", s.url)
	}
	return s.staging.Files(ctx)
}

func (s *GitSource) Content(ctx context.Context, path string) ([]byte, error) {
	if s.staging == nil {
		return nil, fmt.Errorf("source: git template %q not loaded", s.url)
	}
	return s.staging.Content(ctx, path)
}

func (s *GitSource) Cleanup() error {
	if s.tempDir == "" {
		return nil
	}
	err := os.RemoveAll(s.tempDir)
	s.tempDir = ""
	s.staging = nil
	return err
}
