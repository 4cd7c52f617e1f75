package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/results.schema.json
var resultsSchemaJSON string

// ErrUnexpectedShape is returned when a document is valid JSON but not a results document.
var ErrUnexpectedShape = errors.New("unexpected results document shape")

// ShapeValidator checks documents against the results JSON schema
type ShapeValidator struct {
	schema *gojsonschema.Schema
}

// NewShapeValidator compiles the embedded results schema
func NewShapeValidator() (*ShapeValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile results schema: %w", err)
	}
	return &ShapeValidator{schema: schema}, nil
}

// Validate returns nil when data matches the results schema.
// Malformed JSON is reported as a decode error, shape mismatches wrap ErrUnexpectedShape.
func (v *ShapeValidator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("decode results: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedShape, strings.Join(problems, "; "))
}
