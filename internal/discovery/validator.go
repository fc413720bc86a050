package discovery

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema/descriptor.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// descriptorSchema compiles the embedded JSON schema once.
func descriptorSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("discovery: unmarshal schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("descriptor.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("discovery: add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("descriptor.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("discovery: compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDescriptor checks raw descriptor YAML against the embedded
// schema. YAML is decoded generically and round-tripped through JSON so
// the validator sees JSON-compatible types.
func validateDescriptor(data []byte) error {
	schema, err := descriptorSchema()
	if err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("discovery: parse descriptor yaml: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("discovery: convert descriptor to json: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("discovery: prepare descriptor for validation: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("discovery: descriptor schema: %w", err)
	}
	return nil
}
