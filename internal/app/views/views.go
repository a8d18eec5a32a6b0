// Package views holds the embedded page templates and static assets.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// GradYears are the choices of the "current year" field
var GradYears = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year (Dual Degree)", "Graduated"}

// Domains are the choices of the "primary domain" field
var Domains = []string{
	"Full Stack Development",
	"Data Science & ML",
	"Cyber Security",
	"Cloud Computing",
	"DevOps",
	"UI/UX Design",
	"Other",
}

// FuncMap returns the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"float": func(f *float64) string {
			if f == nil {
				return ""
			}
			return strconv.FormatFloat(*f, 'f', -1, 64)
		},
		"int": func(i *int) string {
			if i == nil {
				return ""
			}
			return strconv.Itoa(*i)
		},
		"field": func(label, value string) map[string]string {
			return map[string]string{"Label": label, "Value": value}
		},
		"lines": func(s string) []string {
			return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
		},
	}
}

// Templates parses every page template
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at its directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
