package render

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

// Page is the model of the generated document. Body must be markup produced
// by HTMLRenderer.
type Page struct {
	Title       string
	Username    string
	Query       string
	Language    string
	Languages   []string
	GeneratedAt time.Time
	Body        template.HTML
}

// The inline script applies the same predicate as portfolio.Filter to the
// rendered cards on every keystroke and selection change.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    :root { --bg: #0f172a; --card: #1e293b; --text: #e2e8f0; --muted: #94a3b8; --accent: #38bdf8; }
    * { box-sizing: border-box; }
    body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--text); }
    header, main { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
    header p { color: var(--muted); }
    .controls { display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
    .controls input, .controls select { padding: .6rem .8rem; border-radius: 8px; border: 1px solid #334155; background: var(--card); color: var(--text); }
    .controls input { flex: 1; min-width: 220px; }
    .projects-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.25rem; }
    .project-card { background: var(--card); border-radius: 12px; padding: 1.25rem; display: flex; flex-direction: column; gap: .75rem; }
    .project-card[hidden] { display: none; }
    .project-name, .project-link { color: var(--accent); text-decoration: none; font-weight: 600; }
    .project-description { color: var(--muted); flex: 1; margin: 0; }
    .project-meta { display: flex; flex-wrap: wrap; gap: .75rem; font-size: .85rem; color: var(--muted); }
    .meta-item { display: inline-flex; align-items: center; gap: .3rem; }
    .language-dot { width: .75rem; height: .75rem; border-radius: 50%; display: inline-block; }
    .no-results, .error-message { text-align: center; padding: 3rem 1rem; color: var(--muted); }
    .error-message { color: #f87171; }
    footer { text-align: center; color: var(--muted); font-size: .8rem; padding: 2rem; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    {{if .Username}}<p>Public repositories of <a class="project-link" href="https://github.com/{{.Username}}" target="_blank" rel="noopener noreferrer">@{{.Username}}</a></p>{{end}}
  </header>
  <main>
    <div class="controls">
      <input type="search" id="searchInput" placeholder="Search projects..." value="{{.Query}}" autocomplete="off">
      <select id="languageFilter">
        <option value="">All Languages</option>
{{- range .Languages}}
        <option value="{{.}}"{{if eq . $.Language}} selected{{end}}>{{.}}</option>
{{- end}}
      </select>
    </div>
    {{.Body}}
    <div class="no-results" id="filterNoResults" hidden>
      <p>No projects found matching your criteria.</p>
    </div>
  </main>
  <footer>Generated {{.GeneratedAt.Format "Jan 2, 2006 15:04 MST"}}</footer>
  <script>
    (function () {
      var search = document.getElementById('searchInput');
      var select = document.getElementById('languageFilter');
      var empty = document.getElementById('filterNoResults');
      var cards = Array.prototype.slice.call(document.querySelectorAll('.project-card'));
      if (cards.length === 0) {
        return;
      }
      function apply() {
        var term = search.value.toLowerCase().trim();
        var language = select.value;
        var shown = 0;
        cards.forEach(function (card) {
          var matchesSearch = term === '' ||
            card.dataset.name.indexOf(term) !== -1 ||
            card.dataset.description.indexOf(term) !== -1;
          var matchesLanguage = language === '' || card.dataset.language === language;
          card.hidden = !(matchesSearch && matchesLanguage);
          if (!card.hidden) {
            shown++;
          }
        });
        empty.hidden = shown !== 0;
      }
      search.addEventListener('input', apply);
      select.addEventListener('change', apply);
      apply();
    })();
  </script>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// WritePage writes the complete document for p to w
func WritePage(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = "Projects"
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now()
	}
	if err := page.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
