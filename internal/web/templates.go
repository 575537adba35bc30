package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer adapts html/template to echo's Renderer interface.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		// Post bodies are rich HTML produced by the editor.
		"safe": func(s string) template.HTML { return template.HTML(s) },
		// date_edited is a nullable timestamp, so both forms show up.
		"date": func(v any) string {
			switch t := v.(type) {
			case time.Time:
				return t.UTC().Format("Jan 2, 2006 15:04")
			case *time.Time:
				if t != nil {
					return t.UTC().Format("Jan 2, 2006 15:04")
				}
			}
			return ""
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
