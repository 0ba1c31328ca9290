// Package web holds the embedded server-rendered views. The print view is
// what humans print and what the PNG export captures.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Templates parses the embedded view templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(embeddedTemplates, "templates/*.html"))
}
