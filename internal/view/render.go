// internal/view/render.go
//
// Central view engine: embedded templates, func-map injection, and one
// parsed *template.Template* set per page.
//
// Public helpers
// --------------
//   - Render         – write a page to an http.ResponseWriter.
//   - RenderToString – return the page as template.HTML (tests, previews).
//
// Every page file under templates/ defines a "content" block and is parsed
// together with layout.html, which owns the document shell.  Sets are
// parsed on first use and reused afterwards.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

var (
	mu   sync.Mutex
	sets = map[string]*template.Template{}
)

//
// public helpers
//

// Render executes page inside the layout and streams it to w with status.
// The page is buffered first so a template error never leaves a half-written
// response.
func Render(w http.ResponseWriter, status int, page string, data any) error {
	html, err := RenderToString(page, data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write([]byte(html))
	return err
}

// RenderToString executes page and returns the markup.
func RenderToString(page string, data any) (template.HTML, error) {
	t, err := load(page)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("execute %s: %w", page, err)
	}
	return template.HTML(buf.String()), nil
}

//
// internal: load
//

func load(page string) (*template.Template, error) {
	mu.Lock()
	defer mu.Unlock()

	if t, ok := sets[page]; ok {
		return t, nil
	}
	t, err := template.New(page).
		Funcs(funcMap()).
		ParseFS(files, layoutFile, "templates/"+page+".html")
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", page, err)
	}
	sets[page] = t
	return t, nil
}

//
// func-map
//

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
}
