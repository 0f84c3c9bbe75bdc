// Package github provides read-only access to the GitHub repositories of a
// single account for repocards.
//
// The package includes:
// - RepositoryLister interface for listing a user's repositories
// - Client, a go-github backed implementation of RepositoryLister
// - Repository, the record type rendered as a card
// - GitHubError, the structured error taxonomy for failed loads
package github
