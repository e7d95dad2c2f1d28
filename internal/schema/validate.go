// Package schema validates OCR input documents against an embedded JSON
// Schema before pagenum's extractor ever touches them.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/ocr_input.schema.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile("schemas/ocr_input.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("schema: reading embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("ocr_input.schema.json", bytes.NewReader(data)); err != nil {
			compileErr = fmt.Errorf("schema: loading embedded schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile("ocr_input.schema.json")
	})
	return compiled, compileErr
}

// ValidateOCRInput validates raw OCR input document bytes against the
// embedded schema.
func ValidateOCRInput(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("schema.ValidateOCRInput: invalid JSON: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema.ValidateOCRInput: %w", err)
	}
	return nil
}
