// Package web holds the embedded dashboard template and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}

// StaticFS returns the embedded static asset tree rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
