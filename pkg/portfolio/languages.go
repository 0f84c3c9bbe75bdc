package portfolio

import (
	"slices"

	"repocards/pkg/github"
)

// DistinctLanguages returns every language present in repos once, sorted
// ascending. Repositories without a language are ignored.
func DistinctLanguages(repos []github.Repository) []string {
	seen := make(map[string]struct{})
	languages := make([]string, 0)

	for _, repo := range repos {
		if repo.Language == nil {
			continue
		}
		if _, ok := seen[*repo.Language]; ok {
			continue
		}
		seen[*repo.Language] = struct{}{}
		languages = append(languages, *repo.Language)
	}

	slices.Sort(languages)
	return languages
}
