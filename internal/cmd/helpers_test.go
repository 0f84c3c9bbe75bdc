package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"repocards/pkg/fuzzy"
)

const reposPayload = `[
	{"name": "octocat.github.io", "language": "HTML", "updated_at": "2024-06-01T00:00:00Z", "html_url": "https://github.com/octocat/octocat.github.io"},
	{"name": "old-tool", "description": "Shell helpers", "language": "Shell", "updated_at": "2022-01-01T00:00:00Z", "html_url": "https://github.com/octocat/old-tool"},
	{"name": "api", "description": "REST backend", "language": "Go", "stargazers_count": 3, "updated_at": "2024-05-01T00:00:00Z", "html_url": "https://github.com/octocat/api"},
	{"name": "web", "description": "Frontend for the api", "language": "TypeScript", "updated_at": "2023-03-01T00:00:00Z", "html_url": "https://github.com/octocat/web"}
]`

// mockGitHub serves reposPayload (or the given failure) for octocat
func mockGitHub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// resetFlags restores every package-level flag variable, since cobra keeps
// parsed values between executions
func resetFlags(t *testing.T) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	username = ""
	excludeName = ""
	apiURL = ""
	verbose = false
	filterQuery = ""
	filterLanguage = ""
	renderOutput = ""
	pickPrint = false
	initForce = false
	logger = zap.NewNop()

	reset := func(c *cobra.Command) {
		unmark := func(f *pflag.Flag) { f.Changed = false }
		c.Flags().VisitAll(unmark)
		c.PersistentFlags().VisitAll(unmark)
	}
	reset(rootCmd)
	for _, c := range rootCmd.Commands() {
		reset(c)
	}
}

// executeCommand runs the root command with args and captures its output
func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	// tests never want the stderr production logger to leak between runs
	logger = zap.NewNop()
	return outBuf.String(), errBuf.String(), err
}

// MockBrowserOpener records the URLs it was asked to open
type MockBrowserOpener struct {
	OpenFunc func(url string) error
	Calls    []string
}

func (m *MockBrowserOpener) Open(url string) error {
	m.Calls = append(m.Calls, url)
	if m.OpenFunc != nil {
		return m.OpenFunc(url)
	}
	return nil
}

// stubSelector chooses a fixed value and records the offered options
type stubSelector struct {
	options []fuzzy.Option
	value   string
	err     error
}

func (s *stubSelector) SetOptions(options []fuzzy.Option) error {
	s.options = options
	return nil
}

func (s *stubSelector) SetPrompt(string) {}

func (s *stubSelector) Select() (string, error) { return s.value, s.err }
