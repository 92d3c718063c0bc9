package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate renders d to JSON and runs it through kin-openapi's structural
// validator, a real OpenAPI 3.0 compliance check.
func Validate(d *Document) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling document for validation: %w", err)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return fmt.Errorf("document is not a valid OpenAPI 3.0 document: %w", err)
	}
	return nil
}
