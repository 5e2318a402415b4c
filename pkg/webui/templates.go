package webui

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// loadTemplates parses the embedded page templates. audate and age mirror
// the display filters the pages rely on.
func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"audate": FormatAUDate,
		"age": func(v string) string {
			return FormatAgeAt(v, time.Now())
		},
		// Palette tokens include rgba() values, which the contextual
		// escaper would otherwise reject. They come from the compiled-in
		// brand registry, never from user input.
		"css": func(v string) template.CSS {
			return template.CSS(v)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))
}
