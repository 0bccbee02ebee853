// Package web carries the HTML templates embedded into the binary so the
// server and its tests render pages independent of the working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
