package portfolio

import "repocards/pkg/github"

// Renderer draws the three views of the card list. Exactly one method is
// called per refresh.
type Renderer interface {
	// RenderCards draws one card per repository in the given order
	RenderCards(repos []github.Repository) error

	// RenderEmpty draws the "no results" state
	RenderEmpty() error

	// RenderError draws the failure banner with a user-facing message
	RenderError(message string) error
}

// Render dispatches repos to the matching Renderer view.
func Render(r Renderer, repos []github.Repository) error {
	if len(repos) == 0 {
		return r.RenderEmpty()
	}
	return r.RenderCards(repos)
}
