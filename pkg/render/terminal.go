package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"repocards/pkg/github"
	"repocards/pkg/portfolio"
)

const (
	defaultTerminalWidth = 80
	maxCardWidth         = 100
)

// TerminalRenderer draws repository cards as bordered boxes
type TerminalRenderer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	width    int
}

// NewTerminalRenderer creates a renderer for w. Colours and card width follow
// the terminal when w is one.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		width:    terminalWidth(w),
	}
}

func terminalWidth(w io.Writer) int {
	width := defaultTerminalWidth
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	if width > maxCardWidth {
		width = maxCardWidth
	}
	return width
}

// RenderCards draws one box per repository
func (t *TerminalRenderer) RenderCards(repos []github.Repository) error {
	box := t.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(0, 1).
		Width(t.width - 2)
	name := t.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#38bdf8"))
	muted := t.renderer.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	placeholder := muted.Italic(true)

	for _, repo := range repos {
		lines := []string{name.Render(Sanitize(repo.Name))}
		if repo.URL != "" {
			lines = append(lines, muted.Render(Sanitize(repo.URL)))
		}

		if repo.HasDescription() && *repo.Description != "" {
			lines = append(lines, Sanitize(*repo.Description))
		} else {
			lines = append(lines, placeholder.Render(NoDescription))
		}

		lines = append(lines, t.metaLine(repo, muted))

		if _, err := fmt.Fprintln(t.w, box.Render(strings.Join(lines, "\n"))); err != nil {
			return fmt.Errorf("failed to render card: %w", err)
		}
	}
	return nil
}

func (t *TerminalRenderer) metaLine(repo github.Repository, muted lipgloss.Style) string {
	var parts []string
	if repo.HasLanguage() {
		dot := t.renderer.NewStyle().Foreground(lipgloss.Color(LanguageColor(repo.Language))).Render("●")
		parts = append(parts, dot+" "+Sanitize(*repo.Language))
	}
	if repo.StarCount > 0 {
		parts = append(parts, "★ "+strconv.Itoa(repo.StarCount))
	}
	if repo.ForkCount > 0 {
		parts = append(parts, "⑂ "+strconv.Itoa(repo.ForkCount))
	}
	parts = append(parts, muted.Render("Updated "+FormatDate(repo.UpdatedAt)))
	return strings.Join(parts, "   ")
}

// RenderEmpty prints the no-results message
func (t *TerminalRenderer) RenderEmpty() error {
	style := t.renderer.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true)
	if _, err := fmt.Fprintln(t.w, style.Render(NoResults)); err != nil {
		return fmt.Errorf("failed to render empty state: %w", err)
	}
	return nil
}

// RenderError prints the error banner
func (t *TerminalRenderer) RenderError(message string) error {
	style := t.renderer.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true)
	if _, err := fmt.Fprintln(t.w, style.Render("✗ "+Sanitize(message))); err != nil {
		return fmt.Errorf("failed to render error: %w", err)
	}
	return nil
}

// Ensure TerminalRenderer implements the interface
var _ portfolio.Renderer = (*TerminalRenderer)(nil)
