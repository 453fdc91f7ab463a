package frontend

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded payment pages. Embedding keeps page rendering
// independent of the process working directory.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
