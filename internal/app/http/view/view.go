// Package view holds the site's server-rendered pages.
package view

import (
	"embed"
	"html/template"
	"strings"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"has": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
}

// Genres offered by the venue and artist forms.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// Templates parses every page. Pages are addressed by file name, e.g. "venues.html".
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return t, nil
}
