package portfolio

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"repocards/pkg/github"
)

func TestDistinctLanguages(t *testing.T) {
	tests := []struct {
		name     string
		repos    []github.Repository
		expected []string
	}{
		{
			name:     "empty input",
			repos:    nil,
			expected: []string{},
		},
		{
			name: "deduplicates and sorts",
			repos: []github.Repository{
				repo("a", "Rust", ""),
				repo("b", "Go", ""),
				repo("c", "Rust", ""),
				repo("d", "C++", ""),
			},
			expected: []string{"C++", "Go", "Rust"},
		},
		{
			name: "skips absent language",
			repos: []github.Repository{
				repo("a", "", ""),
				repo("b", "Python", ""),
			},
			expected: []string{"Python"},
		},
		{
			name: "lexicographic byte order",
			repos: []github.Repository{
				repo("a", "Jupyter Notebook", ""),
				repo("b", "HTML", ""),
				repo("c", "Hack", ""),
			},
			expected: []string{"HTML", "Hack", "Jupyter Notebook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DistinctLanguages(tt.repos)

			assert.Equal(t, tt.expected, result)
			assert.True(t, slices.IsSorted(result))
			assert.Len(t, slices.Compact(slices.Clone(result)), len(result))
		})
	}
}
