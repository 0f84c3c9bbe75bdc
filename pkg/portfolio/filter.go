package portfolio

import (
	"strings"

	"repocards/pkg/github"
)

// Criteria holds the two filter axes. A zero value matches everything.
type Criteria struct {
	Query    string
	Language string
}

// Apply filters repos by both axes of c.
func (c Criteria) Apply(repos []github.Repository) []github.Repository {
	return Filter(repos, c.Query, c.Language)
}

// Filter returns the repositories matching searchTerm and selectedLanguage in
// their input order. The input slice is never modified.
func Filter(repos []github.Repository, searchTerm, selectedLanguage string) []github.Repository {
	query := normalizeQuery(searchTerm)

	result := make([]github.Repository, 0, len(repos))
	for _, repo := range repos {
		if matchesQuery(repo, query) && matchesLanguage(repo, selectedLanguage) {
			result = append(result, repo)
		}
	}
	return result
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// matchesQuery expects an already normalized query
func matchesQuery(repo github.Repository, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(repo.Name), query) {
		return true
	}
	return repo.HasDescription() && strings.Contains(strings.ToLower(*repo.Description), query)
}

func matchesLanguage(repo github.Repository, language string) bool {
	if language == "" {
		return true
	}
	return repo.HasLanguage() && *repo.Language == language
}
