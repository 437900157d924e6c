package controllers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"presence/internal/providers"
)

//go:embed templates/*.html
var templateFS embed.FS

type page struct {
	Name  string
	Title string
	Api   string
}

var pages = []page{
	{Name: "presence_weekday", Title: "Presence by weekday", Api: "/api/v1/presence_weekday/"},
	{Name: "mean_time_weekday", Title: "Presence mean time by weekday", Api: "/api/v1/mean_time_weekday/"},
	{Name: "presence_start_end", Title: "Presence start-end weekday", Api: "/api/v1/presence_start_end/"},
}

const defaultPage = "/presence_weekday"

type PageController struct {
	logger    providers.Logger
	templates *template.Template
}

func NewPageController(logger providers.Logger) (*PageController, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageController{logger: logger, templates: tpl}, nil
}

// Index redirects the bare root to the default chart. Unknown paths fall
// through to the catch-all pattern and get a 404.
func (pc *PageController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, defaultPage, http.StatusFound)
}

// Page returns a handler rendering the dashboard page called name.
func (pc *PageController) Page(name string) http.HandlerFunc {
	var current page
	for _, p := range pages {
		if p.Name == name {
			current = p
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if current.Name == "" {
			http.NotFound(w, r)
			return
		}

		var buf bytes.Buffer
		err := pc.templates.ExecuteTemplate(&buf, current.Name+".html", map[string]any{
			"Title": current.Title,
			"Api":   current.Api,
			"Page":  current.Name,
			"Pages": pages,
		})
		if err != nil {
			pc.logger.Errorf(providers.TypeApi, "Unable to render %s: %s", current.Name, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
