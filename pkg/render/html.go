package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"repocards/pkg/github"
	"repocards/pkg/portfolio"
)

const (
	// NoDescription is shown for repositories without a description.
	NoDescription = "No description available"

	// NoResults is shown when no repository matches the filter.
	NoResults = "No projects found matching your criteria."

	// DateLayout formats the last update of a repository.
	DateLayout = "Jan 2, 2006"
)

const fragmentTemplates = `
{{define "cards"}}<div class="projects-grid" id="projectsGrid">
{{range .}}  <div class="project-card" data-name="{{.SearchName}}" data-description="{{.SearchDescription}}" data-language="{{.LanguageValue}}">
    <div class="project-header">
      <div class="project-title">
        <a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="project-name">{{.Name}}</a>
      </div>
    </div>
    <p class="project-description">{{.Description}}</p>
    <div class="project-meta">
{{- if .Language}}
      <span class="meta-item language-badge"><span class="language-dot" style="background-color: {{.Color}};"></span><span>{{.Language}}</span></span>
{{- end}}
{{- if .Stars}}
      <span class="meta-item stars" title="Stars"><span class="icon">&#9733;</span><span>{{.Stars}}</span></span>
{{- end}}
{{- if .Forks}}
      <span class="meta-item forks" title="Forks"><span class="icon">&#x2442;</span><span>{{.Forks}}</span></span>
{{- end}}
      <span class="meta-item updated" title="Last updated"><span>{{.Updated}}</span></span>
    </div>
    <div class="project-footer">
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="project-link">View Project</a>
    </div>
  </div>
{{end}}</div>
{{end}}
{{define "empty"}}<div class="no-results" id="noResults">
  <p>{{.}}</p>
</div>
{{end}}
{{define "error"}}<div class="error-message" role="alert">
  <p>{{.}}</p>
</div>
{{end}}`

var fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))

// cardView is the template model of one card. Name, Description and Language
// hold markup that already went through Escape.
type cardView struct {
	Name              template.HTML
	Description       template.HTML
	Language          template.HTML
	LanguageValue     string
	SearchName        string
	SearchDescription string
	Color             template.CSS
	URL               string
	Stars             int
	Forks             int
	Updated           string
}

func newCardView(repo github.Repository) cardView {
	view := cardView{
		Name:          escapedHTML(repo.Name),
		Description:   escapedHTML(repo.DescriptionOr(NoDescription)),
		LanguageValue: repo.LanguageOr(""),
		SearchName:    strings.ToLower(repo.Name),
		Color:         template.CSS(LanguageColor(repo.Language)),
		URL:           repo.URL,
		Stars:         repo.StarCount,
		Forks:         repo.ForkCount,
		Updated:       FormatDate(repo.UpdatedAt),
	}
	if repo.HasLanguage() {
		view.Language = escapedHTML(*repo.Language)
	}
	if repo.HasDescription() {
		view.SearchDescription = strings.ToLower(*repo.Description)
	}
	return view
}

// FormatDate renders t as e.g. "Mar 5, 2024", or "Unknown" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format(DateLayout)
}

// HTMLRenderer writes card markup fragments to an io.Writer
type HTMLRenderer struct {
	w io.Writer
}

// NewHTMLRenderer creates a renderer writing to w
func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{w: w}
}

// RenderCards writes the card grid
func (r *HTMLRenderer) RenderCards(repos []github.Repository) error {
	views := make([]cardView, 0, len(repos))
	for _, repo := range repos {
		views = append(views, newCardView(repo))
	}
	if err := fragments.ExecuteTemplate(r.w, "cards", views); err != nil {
		return fmt.Errorf("failed to render cards: %w", err)
	}
	return nil
}

// RenderEmpty writes the no-results placeholder
func (r *HTMLRenderer) RenderEmpty() error {
	if err := fragments.ExecuteTemplate(r.w, "empty", NoResults); err != nil {
		return fmt.Errorf("failed to render empty state: %w", err)
	}
	return nil
}

// RenderError writes the error banner
func (r *HTMLRenderer) RenderError(message string) error {
	if err := fragments.ExecuteTemplate(r.w, "error", message); err != nil {
		return fmt.Errorf("failed to render error: %w", err)
	}
	return nil
}

// Ensure HTMLRenderer implements the interface
var _ portfolio.Renderer = (*HTMLRenderer)(nil)
