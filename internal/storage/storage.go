package storage

import (
	"errors"

	"pwreport/internal/config"
)

// ErrInputNotFound is returned when the results document has not been written yet.
var ErrInputNotFound = errors.New("test results JSON file not found")

// Storage loads the runner's results document and persists the rendered report.
type Storage interface {
	LoadResults() ([]byte, error)
	SaveReport(html string) (string, error)
}

// FileStorage reads and writes the paths configured in config.Config.
type FileStorage struct {
	cfg *config.Config
}

// NewFileStorage returns a Storage bound to the config's input and report paths.
func NewFileStorage(cfg *config.Config) *FileStorage {
	return &FileStorage{cfg: cfg}
}
