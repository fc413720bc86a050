package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/internal/source"
	"github.com/goliatone/go-scaffold/pkg/template"
)

func TestDirSource_WalksRelativePaths(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"README.md":        "# readme\n",
		"src/main.go":      "package main\n",
		"src/util/util.go": "package util\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	src := source.NewDir(root)
	ctx := context.Background()
	if err := src.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := src.Files(ctx)
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	want := []string{"README.md", "src/main.go", "src/util/util.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	content, err := src.Content(ctx, "src/main.go")
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if string(content) != "package main\n" {
		t.Fatalf("content = %q", content)
	}
}

func TestDirSource_LoadMissingDirIsFetchError(t *testing.T) {
	src := source.NewDir(filepath.Join(t.TempDir(), "nope"))

	err := src.Load(context.Background())
	var fetch *template.FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("err = %v, want FetchError", err)
	}
}

func TestDirSource_ContentUnknownPath(t *testing.T) {
	src := source.NewDir(t.TempDir())

	_, err := src.Content(context.Background(), "missing.txt")
	var notFound *template.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if notFound.Path != "missing.txt" {
		t.Fatalf("path = %q", notFound.Path)
	}
}

func TestFSSource_Walk(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":     {Data: []byte("a")},
		"dir/b.txt": {Data: []byte("b")},
	}

	src := source.NewFS("fixture", fsys)
	ctx := context.Background()
	if err := src.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := src.Files(ctx)
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	want := []string{"a.txt", "dir/b.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	if _, err := src.Content(ctx, "ghost"); err != nil {
		var notFound *template.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
	} else {
		t.Fatal("expected NotFoundError")
	}
}
