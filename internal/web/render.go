package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"fyyur/internal/logging"
)

//go:embed templates
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// view is the flat key/value context handed to a page template.
type view map[string]any

// pageNames lists every renderable page. Each is parsed together with the layout
// and the shared partials.
var pageNames = []string{
	"home",
	"404",
	"500",
	"venues",
	"search_venues",
	"show_venue",
	"new_venue",
	"edit_venue",
	"artists",
	"search_artists",
	"show_artist",
	"new_artist",
	"edit_artist",
	"shows",
	"new_show",
}

var templateFuncs = template.FuncMap{
	"datetime": FormatDateTime,
	"contains": contains,
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFiles,
			"templates/layout.html",
			"templates/partials/*.html",
			path.Join("templates", "pages", name+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// render executes the page into a buffer and writes it with the given status. Pending
// flash messages from the cookie are shown first, followed by any passed in directly.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data view, flashes ...string) {
	t, ok := s.pages[page]
	if !ok {
		logging.FromContext(r.Context()).Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = view{}
	}
	data["flashes"] = append(popFlashes(w, r), flashes...)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const (
	mediumDateTime = "Mon 01, 02, 2006 3:04PM"
	fullDateTime   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDateTime renders a timestamp in the "medium" (default) or "full" style.
func FormatDateTime(t time.Time, format string) string {
	if format == "full" {
		return t.Format(fullDateTime)
	}
	return t.Format(mediumDateTime)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
