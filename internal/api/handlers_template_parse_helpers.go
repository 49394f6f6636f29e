package api

import (
	"fmt"
	"html/template"
	"io/fs"
)

// parsePageTemplates pairs every page with base.html. Each page defines the
// "content" block that base renders.
func parsePageTemplates(files fs.FS, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFS(files, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		if parsed.Lookup("content") == nil {
			return nil, fmt.Errorf("page template %s does not define content", page)
		}
		templates[page] = parsed
	}
	return templates, nil
}
