package discovery

import (
	"testing"

	"pwreport/internal/domain"
)

func details(titles ...string) []domain.TestDetail {
	out := make([]domain.TestDetail, 0, len(titles))
	for _, title := range titles {
		out = append(out, domain.TestDetail{FullTitle: title})
	}
	return out
}

func TestFilter_FilterByTitle(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		details  []domain.TestDetail
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			details:  details("Login › succeeds", "Board › delete task", "Board › move task"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			details:  details("Login › succeeds", "Board › delete task", "Board › move task"),
			pattern:  "Board*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			details:  details("Login › succeeds", "Board › delete task", "Board › move task"),
			pattern:  "*delete*",
			expected: 1,
		},
		{
			name:     "simple contains match",
			details:  details("Login › succeeds", "Board › delete task"),
			pattern:  "succeeds",
			expected: 1,
		},
		{
			name:     "no matches",
			details:  details("Login › succeeds", "Board › delete task"),
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "title with slash",
			details:  details("kanban/board.spec.ts › drag"),
			pattern:  "kanban*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByTitle(tt.details, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByTitle_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty detail list", func(t *testing.T) {
		result := filter.FilterByTitle(nil, "*task*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern of only wildcards matches via glob", func(t *testing.T) {
		result := filter.FilterByTitle(details("a", "b"), "*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("question mark wildcard", func(t *testing.T) {
		result := filter.FilterByTitle(details("Board › tas1", "Board › task two"), "Board › tas?")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d", len(result))
		}
	})
}
