package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadResults reads the raw results document.
func (s *FileStorage) LoadResults() ([]byte, error) {
	path := s.cfg.GetInputPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	return data, nil
}

// SaveReport writes the HTML report, replacing any previous one, and returns its path.
func (s *FileStorage) SaveReport(html string) (string, error) {
	if err := os.MkdirAll(s.cfg.GetReportDir(), 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := s.cfg.GetReportPath()
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
