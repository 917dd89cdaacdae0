package extract

import (
	"testing"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

var personSchema = &Schema{
	Name: "test-person",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []any{"name", "age"},
	},
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestDecodeObject_Valid(t *testing.T) {
	var p person
	raw := `Sure! {"name": "Ada", "age": 36}`
	if err := DecodeObject(raw, personSchema, &p); err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}
	if p.Name != "Ada" || p.Age != 36 {
		t.Errorf("decoded %+v", p)
	}
}

func TestDecodeObject_SchemaViolation(t *testing.T) {
	var p person
	err := DecodeObject(`{"name": "Ada"}`, personSchema, &p)
	if !apperr.Is(err, apperr.KindSchema) {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestDecodeObject_TypeViolation(t *testing.T) {
	var p person
	err := DecodeObject(`{"name": "Ada", "age": "old"}`, personSchema, &p)
	if !apperr.Is(err, apperr.KindSchema) {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestDecodeObject_ParseFailure(t *testing.T) {
	var p person
	err := DecodeObject("no json here", personSchema, &p)
	if !apperr.Is(err, apperr.KindParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestCompiledSchemaCached(t *testing.T) {
	// Two validations through the same schema must reuse the compiled
	// form; this mainly asserts the cache path doesn't corrupt results.
	for i := 0; i < 2; i++ {
		var p person
		if err := DecodeObject(`{"name": "Ada", "age": 1}`, personSchema, &p); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
	}
}
