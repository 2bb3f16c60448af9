package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the dashboard template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("dashboard").ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Dashboard writes the full dashboard page.
func (r *Renderer) Dashboard(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "dashboard.html.tmpl", page)
}

// Static exposes the embedded stylesheet directory rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
