package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"unicode/utf8"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var staticFS embed.FS

// pageNames lists the templates rendered inside the main layout.
var pageNames = []string{"home", "article"}

var funcs = template.FuncMap{
	"substring": substring,
}

// mustParsePages parses each page together with the main layout.
func mustParsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New("main.html").Funcs(funcs).ParseFS(templateFS,
			"templates/main.html",
			"templates/"+name+".html",
		))
	}
	return pages
}

func publicFS() fs.FS {
	sub, err := fs.Sub(staticFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

// render executes the named page into the main layout.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		s.Error(w, r, errUnknownPage(name))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger().Error("render", "page", name, "err", err)
	}
}

// substring returns the runes of str between start and end, appending an
// ellipsis when str continues past end.
func substring(str string, start, end int) string {
	n := utf8.RuneCountInString(str)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}

	runes := []rune(str)
	out := string(runes[start:end])
	if n > end {
		out += "..."
	}
	return out
}
