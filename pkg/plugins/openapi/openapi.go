// Package openapi provides the built-in plugin that validates the
// generated project's OpenAPI document with kin-openapi. A template that
// ships an invalid spec fails generation instead of shipping a broken
// contract.
package openapi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-scaffold/pkg/plugin"
	"github.com/goliatone/go-scaffold/pkg/render"
)

const Name = "openapi"

type openapiPlugin struct{}

// New returns the openapi plugin.
func New() plugin.Plugin {
	return openapiPlugin{}
}

func (openapiPlugin) Name() string           { return Name }
func (openapiPlugin) Version() string        { return "1.0.0" }
func (openapiPlugin) Description() string    { return "validates the project's OpenAPI document" }
func (openapiPlugin) Dependencies() []string { return nil }

func (openapiPlugin) Defaults() map[string]any {
	return map[string]any{"document": "api/openapi.yaml"}
}

func (openapiPlugin) Apply(ctx context.Context, rctx render.Context, config map[string]any) error {
	document, _ := config["document"].(string)
	if document == "" {
		return fmt.Errorf("openapi: document path is required")
	}

	path := filepath.Join(rctx.OutputDir, filepath.FromSlash(document))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// The template ships no API contract; nothing to validate.
		return nil
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("openapi: load %q: %w", document, err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("openapi: validate %q: %w", document, err)
	}
	return nil
}
