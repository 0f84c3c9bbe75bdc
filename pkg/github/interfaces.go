package github

import "context"

// RepositoryLister defines the interface for loading an account's repositories
type RepositoryLister interface {
	// ListUserRepositories returns at most one page of the user's repositories,
	// most recently updated first.
	ListUserRepositories(ctx context.Context, username string) ([]Repository, error)
}

// Ensure Client implements the interface
var _ RepositoryLister = (*Client)(nil)
