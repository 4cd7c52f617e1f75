package ui

import "pwreport/internal/domain"

// Viewer displays failed specs interactively
type Viewer interface {
	View(failures []domain.TestDetail) error
}
