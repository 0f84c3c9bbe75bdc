package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockGitHubServer creates a test HTTP server that serves a fixed response for
// the repository listing of testuser and records the last query string
func mockGitHubServer(t *testing.T, status int, body string, headers map[string]string) (*httptest.Server, *url.Values) {
	t.Helper()
	var last url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		for k, v := range headers {
			w.Header().Set(k, v)
		}

		if r.Method != http.MethodGet || r.URL.Path != "/users/testuser/repos" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &last
}

// createTestClient creates a GitHub client configured to use the test server
func createTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(5*time.Second, WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(0)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, client.client)
	assert.Equal(t, "https://api.github.com/", client.client.BaseURL.String())
	assert.Equal(t, userAgent, client.client.UserAgent)
}

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "adds trailing slash", baseURL: "https://ghe.example.com/api/v3", want: "https://ghe.example.com/api/v3/"},
		{name: "keeps trailing slash", baseURL: "http://localhost:8080/", want: "http://localhost:8080/"},
		{name: "empty keeps default", baseURL: "", want: "https://api.github.com/"},
		{name: "missing scheme", baseURL: "api.github.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(time.Second, WithBaseURL(tt.baseURL))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.client.BaseURL.String())
		})
	}
}

func TestListUserRepositories(t *testing.T) {
	body := `[
		{
			"name": "alpha",
			"description": "First project",
			"language": "Go",
			"stargazers_count": 5,
			"forks_count": 2,
			"updated_at": "2024-01-01T10:00:00Z",
			"html_url": "https://github.com/testuser/alpha"
		},
		{
			"name": "beta",
			"description": null,
			"language": null,
			"updated_at": "2023-01-01T10:00:00Z",
			"html_url": "https://github.com/testuser/beta"
		}
	]`

	server, last := mockGitHubServer(t, http.StatusOK, body, nil)
	client := createTestClient(t, server)

	repos, err := client.ListUserRepositories(context.Background(), "testuser")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "100", last.Get("per_page"))
	assert.Equal(t, "updated", last.Get("sort"))

	alpha := repos[0]
	assert.Equal(t, "alpha", alpha.Name)
	require.NotNil(t, alpha.Description)
	assert.Equal(t, "First project", *alpha.Description)
	require.NotNil(t, alpha.Language)
	assert.Equal(t, "Go", *alpha.Language)
	assert.Equal(t, 5, alpha.StarCount)
	assert.Equal(t, 2, alpha.ForkCount)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), alpha.UpdatedAt.UTC())
	assert.Equal(t, "https://github.com/testuser/alpha", alpha.URL)

	beta := repos[1]
	assert.Nil(t, beta.Description)
	assert.Nil(t, beta.Language)
	assert.Zero(t, beta.StarCount)
	assert.Zero(t, beta.ForkCount)
}

func TestListUserRepositories_SkipsRecordsWithoutName(t *testing.T) {
	body := `[
		{"name": "kept", "updated_at": "2024-01-01T00:00:00Z"},
		{"description": "no name here"},
		{"name": "", "description": "empty name"}
	]`

	server, _ := mockGitHubServer(t, http.StatusOK, body, nil)
	client := createTestClient(t, server)

	repos, err := client.ListUserRepositories(context.Background(), "testuser")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "kept", repos[0].Name)
}

func TestListUserRepositories_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		headers  map[string]string
		wantType ErrorType
	}{
		{
			name:   "primary rate limit",
			status: http.StatusForbidden,
			body:   `{"message": "API rate limit exceeded for 127.0.0.1."}`,
			headers: map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     "1893456000",
			},
			wantType: ErrorTypeRateLimit,
		},
		{
			name:     "plain forbidden",
			status:   http.StatusForbidden,
			body:     `{"message": "Forbidden"}`,
			wantType: ErrorTypeRateLimit,
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `{"message": "Internal Server Error"}`,
			wantType: ErrorTypeFetch,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"message": "Not Found"}`,
			wantType: ErrorTypeFetch,
		},
		{
			name:     "payload is not an array",
			status:   http.StatusOK,
			body:     `{"name": "not-a-list"}`,
			wantType: ErrorTypeFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := mockGitHubServer(t, tt.status, tt.body, tt.headers)
			client := createTestClient(t, server)

			repos, err := client.ListUserRepositories(context.Background(), "testuser")
			require.Error(t, err)
			assert.Nil(t, repos)

			var ghErr *GitHubError
			require.ErrorAs(t, err, &ghErr)
			assert.Equal(t, tt.wantType, ghErr.Type)
			assert.Equal(t, "user testuser", ghErr.Resource)
		})
	}
}

func TestListUserRepositories_RateLimitMessage(t *testing.T) {
	server, _ := mockGitHubServer(t, http.StatusForbidden, `{"message": "Forbidden"}`, nil)
	client := createTestClient(t, server)

	_, err := client.ListUserRepositories(context.Background(), "testuser")
	require.Error(t, err)
	assert.True(t, IsRateLimit(err))
	assert.False(t, IsFetch(err))
	assert.Contains(t, err.Error(), RateLimitMessage)
}

func TestListUserRepositories_EmptyUsername(t *testing.T) {
	client, err := NewClient(time.Second)
	require.NoError(t, err)

	_, err = client.ListUserRepositories(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, IsFetch(err))
}

func TestListUserRepositories_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := createTestClient(t, server)
	server.Close()

	_, err := client.ListUserRepositories(context.Background(), "testuser")
	require.Error(t, err)
	assert.True(t, IsFetch(err))
}

func TestListUserRepositories_ContextCanceled(t *testing.T) {
	server, _ := mockGitHubServer(t, http.StatusOK, `[]`, nil)
	client := createTestClient(t, server)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListUserRepositories(ctx, "testuser")
	require.Error(t, err)
	assert.True(t, IsFetch(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListUserRepositories_LogsLowQuota(t *testing.T) {
	tests := []struct {
		name      string
		remaining string
		wantWarn  bool
	}{
		{name: "plenty left", remaining: "42", wantWarn: false},
		{name: "nearly exhausted", remaining: "3", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := mockGitHubServer(t, http.StatusOK, `[]`, map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": tt.remaining,
				"X-RateLimit-Reset":     "1893456000",
			})

			core, logs := observer.New(zapcore.DebugLevel)
			client, err := NewClient(5*time.Second, WithBaseURL(server.URL), WithLogger(zap.New(core)))
			require.NoError(t, err)

			_, err = client.ListUserRepositories(context.Background(), "testuser")
			require.NoError(t, err)

			warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("GitHub rate limit nearly exhausted")
			assert.Equal(t, tt.wantWarn, warnings.Len() == 1)
			assert.Equal(t, 1, logs.FilterMessageSnippet("GitHub rate limit").Len())
		})
	}
}
