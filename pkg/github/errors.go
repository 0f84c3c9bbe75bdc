package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents the categories of failed repository loads
type ErrorType string

const (
	ErrorTypeRateLimit ErrorType = "rate_limit"
	ErrorTypeFetch     ErrorType = "fetch"
	ErrorTypeMalformed ErrorType = "malformed"
)

// User-facing messages for each failure category.
const (
	RateLimitMessage = "Rate limit exceeded. Please try again later."
	FetchMessage     = "Failed to fetch repositories"
	MalformedMessage = "Repository record is missing a name"
)

// GitHubError represents a structured error from GitHub operations
type GitHubError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	Resource   string    `json:"resource,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *GitHubError) Unwrap() error {
	return e.Cause
}

// NewGitHubError creates a new GitHubError with the specified type and message
func NewGitHubError(errorType ErrorType, message string, cause error) *GitHubError {
	return &GitHubError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// MalformedRecordError reports a repository object that cannot become a card.
// It is logged and skipped, never returned from a load.
type MalformedRecordError struct {
	Index int
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s error: record %d: %s", ErrorTypeMalformed, e.Index, MalformedMessage)
}

// WrapGitHubError wraps a go-github error into our structured error type.
// Every failure is either a rate limit or a fetch error.
func WrapGitHubError(err error, resource string) *GitHubError {
	if err == nil {
		return nil
	}

	// If it's already a GitHubError, return as-is
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		if ghErr.Resource == "" {
			ghErr.Resource = resource
		}
		return ghErr
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &GitHubError{
			Type:       ErrorTypeRateLimit,
			Message:    RateLimitMessage,
			Cause:      err,
			Resource:   resource,
			StatusCode: statusOf(rateErr.Response),
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &GitHubError{
			Type:       ErrorTypeRateLimit,
			Message:    RateLimitMessage,
			Cause:      err,
			Resource:   resource,
			StatusCode: statusOf(abuseErr.Response),
		}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return parseGitHubAPIError(respErr, resource)
	}

	message := FetchMessage
	if errors.Is(err, context.DeadlineExceeded) {
		message = FetchMessage + ": request timed out"
	}

	return &GitHubError{
		Type:     ErrorTypeFetch,
		Message:  message,
		Cause:    err,
		Resource: resource,
	}
}

// parseGitHubAPIError maps a non-success API response onto the taxonomy
func parseGitHubAPIError(respErr *github.ErrorResponse, resource string) *GitHubError {
	status := statusOf(respErr.Response)

	switch status {
	case http.StatusForbidden, http.StatusTooManyRequests:
		return &GitHubError{
			Type:       ErrorTypeRateLimit,
			Message:    RateLimitMessage,
			Cause:      respErr,
			Resource:   resource,
			StatusCode: status,
		}
	default:
		return &GitHubError{
			Type:       ErrorTypeFetch,
			Message:    FetchMessage,
			Cause:      respErr,
			Resource:   resource,
			StatusCode: status,
		}
	}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// IsRateLimit reports whether err is a rate limit failure
func IsRateLimit(err error) bool {
	return hasType(err, ErrorTypeRateLimit)
}

// IsFetch reports whether err is a generic fetch failure
func IsFetch(err error) bool {
	return hasType(err, ErrorTypeFetch)
}

func hasType(err error, errorType ErrorType) bool {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type == errorType
	}
	return false
}
