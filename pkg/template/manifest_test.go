package template_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/pkg/template"
	"github.com/goliatone/go-scaffold/pkg/testsupport"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`name: java-service
description: Spring Boot service layout
version: 1.2.0
vars:
  port: 8080
  registry: ghcr.io/acme
`)

	m, err := template.ParseManifest(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Name != "java-service" {
		t.Fatalf("name = %q", m.Name)
	}
	if m.Version != "1.2.0" {
		t.Fatalf("version = %q", m.Version)
	}
	want := map[string]any{"port": 8080, "registry": "ghcr.io/acme"}
	if diff := cmp.Diff(want, m.Vars); diff != "" {
		t.Fatalf("vars mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifest_Malformed(t *testing.T) {
	if _, err := template.ParseManifest([]byte("name: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadManifest(t *testing.T) {
	src := testsupport.NewMemorySource("fixture", map[string]string{
		template.ManifestFileName: "name: demo\nvars:\n  owner: acme\n",
		"README.md":               "# demo\n",
	})

	m, err := template.LoadManifest(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "demo" {
		t.Fatalf("name = %q", m.Name)
	}
	if m.Vars["owner"] != "acme" {
		t.Fatalf("vars = %v", m.Vars)
	}
}

func TestLoadManifest_MissingIsNotAnError(t *testing.T) {
	src := testsupport.NewMemorySource("fixture", map[string]string{
		"README.md": "# demo\n",
	})

	m, err := template.LoadManifest(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "" || m.Vars != nil {
		t.Fatalf("want zero manifest, got %+v", m)
	}
}
