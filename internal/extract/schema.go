package extract

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

// Schema defines the JSON structure expected from the oracle for one
// generation purpose.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "mcq-set".
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// DecodeObject extracts a JSON object from raw, validates it against
// schema, and unmarshals it into out. Failures carry the parse or schema
// error kind; there is no repair path.
func DecodeObject(raw string, schema *Schema, out any) error {
	obj, err := Object(raw)
	if err != nil {
		return err
	}

	if err := Validate(schema, obj); err != nil {
		return err
	}

	if err := json.Unmarshal(obj, out); err != nil {
		return apperr.Wrap(apperr.KindParse, err, "decode %s object", schema.Name)
	}
	return nil
}

// Validate checks raw JSON against the given Schema.
func Validate(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return apperr.Wrap(apperr.KindParse, err, "invalid JSON")
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return apperr.Wrap(apperr.KindSchema, err, "compile schema %q", schema.Name)
	}

	if err := compiled.Validate(parsed); err != nil {
		return apperr.Wrap(apperr.KindSchema, err, "%s schema validation failed", schema.Name)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
