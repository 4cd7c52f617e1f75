package parser

import (
	"encoding/json"
	"fmt"

	"pwreport/internal/domain"
)

// PlaywrightParser parses the output of the Playwright JSON reporter
type PlaywrightParser struct {
	validator *ShapeValidator
}

// NewPlaywrightParser creates a new PlaywrightParser
func NewPlaywrightParser() (*PlaywrightParser, error) {
	validator, err := NewShapeValidator()
	if err != nil {
		return nil, err
	}
	return &PlaywrightParser{validator: validator}, nil
}

// Parse validates and decodes a results document and classifies every result status.
func (p *PlaywrightParser) Parse(data []byte) (*domain.TestRunResult, error) {
	if err := p.validator.Validate(data); err != nil {
		return nil, err
	}

	var run domain.TestRunResult
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	for i := range run.Suites {
		classifySuite(&run.Suites[i])
	}
	return &run, nil
}

func classifySuite(suite *domain.Suite) {
	for i := range suite.Specs {
		for j := range suite.Specs[i].Tests {
			results := suite.Specs[i].Tests[j].Results
			for k := range results {
				results[k].Status = classify(results[k])
			}
		}
	}
	for i := range suite.Suites {
		classifySuite(&suite.Suites[i])
	}
}

// classify maps a result onto the Status enum. A boolean status only survives as a label:
// it counts as neither passed nor failed.
func classify(r domain.Result) domain.Status {
	if r.BooleanStatus {
		return domain.StatusUnknown
	}
	return domain.ParseStatus(r.Outcome)
}
