// Package templates holds the HTML views, embedded into the binary.
package templates

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	// num prints 165 rather than 165.000000 and keeps real fractions.
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
	// pathseg escapes one URL path segment, so "A/b" links as "A%2Fb".
	"pathseg": url.PathEscape,
}

// Load parses every view. Each file is addressable by its base name,
// e.g. "home.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}

// MustLoad is Load for process startup.
func MustLoad() *template.Template {
	return template.Must(Load())
}
