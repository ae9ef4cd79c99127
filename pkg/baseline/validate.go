package baseline

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/baseline.schema.json
var baselineSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func baselineSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("baseline.schema.json", bytes.NewReader(baselineSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to load baseline schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("baseline.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile baseline schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks raw JSON against the fixed baseline structure.
func ValidateDocument(data []byte) error {
	schema, err := baselineSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseline, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseline, err)
	}
	return nil
}
