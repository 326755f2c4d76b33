// Package web holds the server-rendered dashboard page.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

const DashboardTemplate = "dashboard.html"

var funcs = template.FuncMap{
	// barWidth renders a percentage as a CSS width, clamped to [0, 100].
	"barWidth": func(p float64) template.CSS {
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		return template.CSS(fmt.Sprintf("width: %.1f%%", p))
	},
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
