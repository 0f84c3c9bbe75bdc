package portfolio

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"repocards/pkg/github"
)

// MockLister implements github.RepositoryLister for testing
type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListUserRepositories(ctx context.Context, username string) ([]github.Repository, error) {
	args := m.Called(ctx, username)
	repos, _ := args.Get(0).([]github.Repository)
	return repos, args.Error(1)
}

// recordingRenderer captures every call made by the controller
type recordingRenderer struct {
	calls  []string
	cards  [][]github.Repository
	errors []string
	err    error
}

func (r *recordingRenderer) RenderCards(repos []github.Repository) error {
	r.calls = append(r.calls, "cards")
	r.cards = append(r.cards, repos)
	return r.err
}

func (r *recordingRenderer) RenderEmpty() error {
	r.calls = append(r.calls, "empty")
	return r.err
}

func (r *recordingRenderer) RenderError(message string) error {
	r.calls = append(r.calls, "error")
	r.errors = append(r.errors, message)
	return r.err
}

func strPtr(s string) *string {
	return &s
}

func repo(name, language, updated string) github.Repository {
	r := github.Repository{
		Name: name,
		URL:  "https://github.com/testuser/" + name,
	}
	if language != "" {
		r.Language = strPtr(language)
	}
	if updated != "" {
		t, err := time.Parse("2006-01-02", updated)
		if err != nil {
			panic(err)
		}
		r.UpdatedAt = t
	}
	return r
}

func names(repos []github.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}
