package portfolio

import (
	"context"
	"fmt"
	"slices"

	"repocards/pkg/github"
)

// Load fetches the repositories of username, removes the one named
// excludedName and orders the rest by most recent update.
func Load(ctx context.Context, lister github.RepositoryLister, username, excludedName string) ([]github.Repository, error) {
	if lister == nil {
		return nil, fmt.Errorf("repository lister is required")
	}

	repos, err := lister.ListUserRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	repos = ExcludeByName(repos, excludedName)
	SortByUpdated(repos)

	return repos, nil
}

// ExcludeByName returns a new slice without the repositories whose name equals
// name exactly.
func ExcludeByName(repos []github.Repository, name string) []github.Repository {
	result := make([]github.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Name == name {
			continue
		}
		result = append(result, repo)
	}
	return result
}

// SortByUpdated orders repos in place, most recently updated first. Ties keep
// their relative order.
func SortByUpdated(repos []github.Repository) {
	slices.SortStableFunc(repos, func(a, b github.Repository) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
}
