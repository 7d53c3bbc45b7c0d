// Package templates holds the site's HTML views.
package templates

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/russross/blackfriday/v2"

	"Portfolio/models"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"markdown": renderMarkdown,
	"truncate": func(s string, n int) string {
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		rs := []rune(s)
		return string(rs[:n]) + "..."
	},
	"deref":     models.Deref,
	"joinStack": models.JoinTechStack,
	"initial": func(s string) string {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
		if r == utf8.RuneError {
			return "?"
		}
		return strings.ToUpper(string(r))
	},
}

// renderMarkdown turns a project description into HTML. Raw HTML in the
// source is dropped and links with unsafe schemes are not rendered.
func renderMarkdown(s string) template.HTML {
	// HTMLRenderer keeps per-document state, so one per call.
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.Safelink,
	})
	out := blackfriday.Run([]byte(s),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(r),
	)
	return template.HTML(out)
}

// Views is the parsed template set.
type Views struct {
	t *template.Template
}

// Parse parses every embedded view. It panics on a broken template, so
// it belongs in start-up code.
func Parse() *Views {
	t := template.Must(template.New("").Funcs(funcs).ParseFS(files, "html/*.html"))
	return &Views{t: t}
}

// Render executes the named template.
func (v *Views) Render(w io.Writer, name string, data any) error {
	return v.t.ExecuteTemplate(w, name, data)
}
