package parser

import "pwreport/internal/domain"

// Parser decodes a results document produced by a test runner
type Parser interface {
	Parse(data []byte) (*domain.TestRunResult, error)
}
