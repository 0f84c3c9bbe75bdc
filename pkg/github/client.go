package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

const (
	// PageSize is the only page ever requested; there is no pagination.
	PageSize = 100

	// SortUpdated asks GitHub to order repositories by last update.
	SortUpdated = "updated"

	// DefaultTimeout bounds the single repository request.
	DefaultTimeout = 30 * time.Second

	userAgent = "repocards"

	// lowQuota is the remaining request count at which a warning is logged
	lowQuota = 5
)

// Client implements the RepositoryLister interface using the GitHub REST API.
// It never authenticates; only public repositories are visible.
type Client struct {
	client *github.Client
	logger *zap.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client) error

// WithBaseURL points the client at another API root, e.g. a GitHub Enterprise
// server or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) error {
		if baseURL == "" {
			return nil
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid API URL %q: %w", baseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid API URL %q: scheme and host are required", baseURL)
		}
		c.client.BaseURL = parsed
		return nil
	}
}

// WithLogger sets the logger used for skipped records and request tracing
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// NewClient creates a new unauthenticated GitHub API client whose requests
// give up after timeout. A zero timeout selects DefaultTimeout.
func NewClient(timeout time.Duration, opts ...ClientOption) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	gh := github.NewClient(&http.Client{Timeout: timeout})
	gh.UserAgent = userAgent

	c := &Client{
		client: gh,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ListUserRepositories issues one GET /users/{username}/repos request with
// per_page=100 and sort=updated. Records without a name are dropped.
func (c *Client) ListUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	resource := fmt.Sprintf("user %s", username)
	if strings.TrimSpace(username) == "" {
		return nil, NewGitHubError(ErrorTypeFetch, FetchMessage+": username is required", nil)
	}

	opts := &github.RepositoryListByUserOptions{
		Sort:        SortUpdated,
		ListOptions: github.ListOptions{PerPage: PageSize},
	}

	c.logger.Debug("listing repositories",
		zap.String("username", username),
		zap.String("base_url", c.client.BaseURL.String()),
	)

	repos, resp, err := c.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, WrapGitHubError(err, resource)
	}

	if resp != nil {
		c.logQuota(resp.Rate)
		if resp.NextPage != 0 {
			c.logger.Debug("ignoring further pages", zap.Int("next_page", resp.NextPage))
		}
	}

	result := make([]Repository, 0, len(repos))
	for i, repo := range repos {
		converted, err := convertGitHubRepository(i, repo)
		if err != nil {
			c.logger.Debug("skipping repository record", zap.Error(err))
			continue
		}
		result = append(result, converted)
	}

	c.logger.Debug("listed repositories",
		zap.Int("received", len(repos)),
		zap.Int("kept", len(result)),
	)

	return result, nil
}

// logQuota reports the remaining request quota. Nothing is throttled; a low
// quota only produces a warning.
func (c *Client) logQuota(rate github.Rate) {
	if rate.Limit == 0 {
		return
	}

	fields := []zap.Field{
		zap.Int("limit", rate.Limit),
		zap.Int("remaining", rate.Remaining),
		zap.Time("reset", rate.Reset.Time),
	}
	if rate.Remaining <= lowQuota {
		c.logger.Warn("GitHub rate limit nearly exhausted", fields...)
		return
	}
	c.logger.Debug("GitHub rate limit", fields...)
}

// convertGitHubRepository converts a GitHub API repository to our internal type
func convertGitHubRepository(index int, repo *github.Repository) (Repository, error) {
	if repo == nil || repo.GetName() == "" {
		return Repository{}, &MalformedRecordError{Index: index}
	}

	return Repository{
		Name:        repo.GetName(),
		Description: copyString(repo.Description),
		Language:    copyString(repo.Language),
		StarCount:   repo.GetStargazersCount(),
		ForkCount:   repo.GetForksCount(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		URL:         repo.GetHTMLURL(),
	}, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
