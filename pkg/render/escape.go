package render

import (
	"html/template"
	"strings"
	"unicode"
)

// Escape returns text with the HTML special characters <, >, &, ' and "
// replaced by entities, so it can be placed in element content or a quoted
// attribute value.
func Escape(text string) string {
	return template.HTMLEscapeString(text)
}

// escapedHTML escapes text and marks the result as safe for html/template,
// so it is not escaped a second time.
func escapedHTML(text string) template.HTML {
	return template.HTML(Escape(text))
}

// Sanitize drops control characters, including the ESC that starts terminal
// escape sequences. Newlines and tabs become spaces.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, text)
}
