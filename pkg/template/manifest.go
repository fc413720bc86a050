package template

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the well-known manifest path inside a template
// tree. The manifest is metadata for the generator and is excluded from
// the materialized output.
const ManifestFileName = "scaffold.yaml"

// Manifest describes a template: identity plus default variable values
// that seed the rendering context (context-supplied values win).
type Manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Version     string         `yaml:"version"`
	Vars        map[string]any `yaml:"vars"`
}

// ParseManifest decodes manifest bytes.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("template: parse manifest: %w", err)
	}
	return m, nil
}

// LoadManifest reads and decodes scaffold.yaml from a source. A template
// without a manifest is valid: the zero Manifest is returned with no
// error.
func LoadManifest(ctx context.Context, src Source) (Manifest, error) {
	data, err := src.Content(ctx, ManifestFileName)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("template: read manifest: %w", err)
	}
	return ParseManifest(data)
}
