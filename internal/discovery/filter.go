package discovery

import (
	"path/filepath"
	"strings"

	"pwreport/internal/domain"
)

// Filter filters detail records by title pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByTitle keeps the records whose full title matches pattern.
// Supports patterns like "Login*" or "*column*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByTitle(details []domain.TestDetail, pattern string) []domain.TestDetail {
	if pattern == "" {
		return details
	}

	var filtered []domain.TestDetail
	for _, d := range details {
		if f.matches(d.FullTitle, pattern) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func (f *Filter) matches(title, pattern string) bool {
	// filepath.Match supports * and ? wildcards; "/" would stop a * so it is blanked out
	if matched, err := filepath.Match(pattern, strings.ReplaceAll(title, "/", " ")); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// "*Payment*" style patterns: every non-empty part must occur in the title
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(title, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(title, pattern)
	}
	return false
}
