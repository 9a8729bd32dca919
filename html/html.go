package html

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var viewsFS embed.FS

// Template is the echo renderer for server-rendered pages.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer parses the embedded views. Panics on a bad template, which
// only happens at build time.
func NewRenderer() *Template {
	t := template.Must(template.New("").Funcs(TemplateFuncs()).ParseFS(viewsFS, "views/*.html"))
	return &Template{Templates: t}
}

// TemplateFuncs returns the helpers the views use.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
	}
}
