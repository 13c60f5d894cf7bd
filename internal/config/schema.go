package config

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// configSchema is the JSON Schema every fmtgate.yml must satisfy before it is
// unmarshalled. Validating the raw document first gives precise property-level
// errors instead of whatever the yaml decoder reports on a type mismatch.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "fmtgate configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "sourceDirs": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "extensions": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "pattern": "^\\..+" }
    },
    "formatter": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "executable": { "type": "string", "minLength": 1 },
        "style": { "type": "string", "minLength": 1 }
      }
    }
  }
}`

const configSchemaID = "fmtgate-config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledConfigSchema compiles the embedded schema once per process.
func compiledConfigSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(configSchema))
		if err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(configSchemaID, doc); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile(configSchemaID)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks the raw YAML document against the config schema.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}
	if doc == nil {
		// An empty file means "all defaults".
		return nil
	}

	sch, err := compiledConfigSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return &SchemaViolationError{Wrapped: err}
	}
	return nil
}
