package portfolio

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"repocards/pkg/github"
)

// State is the lifecycle stage of a Controller
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// DefaultErrorMessage is shown when a load fails for an unclassified reason.
const DefaultErrorMessage = "Failed to load projects. Please try again later."

var (
	// ErrAlreadyLoaded is returned by a second call to Load
	ErrAlreadyLoaded = errors.New("repositories already loaded")

	// ErrNotReady is returned when filtering before a successful load.
	// A failed load is final; a new Controller is needed to try again.
	ErrNotReady = errors.New("repositories are not loaded")
)

// Controller owns the loaded repositories and the current filter, and
// re-renders after every change. It is not safe for concurrent use.
type Controller struct {
	lister   github.RepositoryLister
	renderer Renderer
	logger   *zap.Logger

	username string
	excluded string

	state    State
	loaded   bool
	all      []github.Repository
	filtered []github.Repository
	criteria Criteria
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger for load failures and filter changes
func WithControllerLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCriteria sets the filter applied right after loading
func WithCriteria(criteria Criteria) ControllerOption {
	return func(c *Controller) {
		c.criteria = criteria
	}
}

// NewController creates a controller that loads username's repositories,
// hides excludedName and draws through renderer.
func NewController(lister github.RepositoryLister, renderer Renderer, username, excludedName string, opts ...ControllerOption) *Controller {
	c := &Controller{
		lister:   lister,
		renderer: renderer,
		logger:   zap.NewNop(),
		username: username,
		excluded: excludedName,
		state:    StateLoading,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load fetches the repositories once and renders the filtered view. On
// failure the error banner is rendered and the controller stays failed.
func (c *Controller) Load(ctx context.Context) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}
	c.loaded = true

	repos, err := Load(ctx, c.lister, c.username, c.excluded)
	if err != nil {
		c.state = StateFailed
		c.logger.Error("failed to load repositories",
			zap.String("username", c.username),
			zap.Error(err),
		)
		if renderErr := c.renderer.RenderError(UserMessage(err)); renderErr != nil {
			return errors.Join(err, fmt.Errorf("failed to render error: %w", renderErr))
		}
		return err
	}

	c.all = repos
	c.state = StateReady
	c.logger.Debug("loaded repositories",
		zap.String("username", c.username),
		zap.String("excluded", c.excluded),
		zap.Int("count", len(repos)),
	)

	return c.refresh()
}

// SetQuery replaces the search term and re-renders
func (c *Controller) SetQuery(query string) error {
	return c.SetFilter(query, c.criteria.Language)
}

// SetLanguage replaces the language selection and re-renders
func (c *Controller) SetLanguage(language string) error {
	return c.SetFilter(c.criteria.Query, language)
}

// SetFilter replaces both axes and re-renders
func (c *Controller) SetFilter(query, language string) error {
	if c.state != StateReady {
		return ErrNotReady
	}
	c.criteria = Criteria{Query: query, Language: language}
	return c.refresh()
}

// refresh always filters from the full list, never from the previous view
func (c *Controller) refresh() error {
	c.filtered = c.criteria.Apply(c.all)
	c.logger.Debug("filtered repositories",
		zap.String("query", c.criteria.Query),
		zap.String("language", c.criteria.Language),
		zap.Int("matches", len(c.filtered)),
	)
	return Render(c.renderer, c.filtered)
}

// State returns the lifecycle stage
func (c *Controller) State() State {
	return c.state
}

// Criteria returns the active filter
func (c *Controller) Criteria() Criteria {
	return c.criteria
}

// Languages returns the distinct languages of the full list
func (c *Controller) Languages() []string {
	return DistinctLanguages(c.all)
}

// All returns a copy of the full, ordered list
func (c *Controller) All() []github.Repository {
	return slices.Clone(c.all)
}

// Filtered returns a copy of the current filtered view
func (c *Controller) Filtered() []github.Repository {
	return slices.Clone(c.filtered)
}

// UserMessage converts a load failure into the text shown to visitors
func UserMessage(err error) string {
	var ghErr *github.GitHubError
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		switch ghErr.Type {
		case github.ErrorTypeRateLimit:
			return github.RateLimitMessage
		case github.ErrorTypeFetch:
			return github.FetchMessage
		}
	}
	return DefaultErrorMessage
}
