package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"Portfolio/content"
	"Portfolio/db"
	"Portfolio/logger"
	"Portfolio/relay"
	"Portfolio/templates"
)

// Server holds everything the handlers need. It replaces the package
// level pool so that handlers can run against any db.Store.
type Server struct {
	Store    db.Store
	Users    db.Users
	Sessions *Sessions
	Relay    *relay.Service
	Views    *templates.Views
	Content  content.Site
	// StaticDir is served under /static/ when set.
	StaticDir string
}

// Routes builds the router for the public site, the admin panel and the
// contact relay endpoint.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	if s.StaticDir != "" {
		r.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(s.StaticDir))),
		)
	}

	// Публичные маршруты
	r.HandleFunc("/", s.Index).Methods("GET")
	r.HandleFunc("/contact", s.ContactSubmit).Methods("POST")
	r.HandleFunc("/theme", s.ToggleTheme).Methods("POST")
	r.HandleFunc("/login", s.LoginHandler).Methods("GET", "POST")
	r.HandleFunc("/logout", s.LogoutHandler).Methods("GET", "POST")
	r.Handle("/api/contact", relay.NewHandler(s.Relay))

	// Админ-панель: все под /admin/*
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(s.RequireAdmin)

	// GET /admin?tab=skills|projects|messages|settings
	admin.HandleFunc("", s.AdminDashboard).Methods("GET")

	admin.HandleFunc("/skills", s.CreateSkill).Methods("POST")
	admin.HandleFunc("/skills/{id}", s.UpdateSkill).Methods("POST")
	admin.HandleFunc("/skills/{id}/delete", s.DeleteSkill).Methods("POST")

	admin.HandleFunc("/projects", s.CreateProject).Methods("POST")
	admin.HandleFunc("/projects/{id}", s.UpdateProject).Methods("POST")
	admin.HandleFunc("/projects/{id}/delete", s.DeleteProject).Methods("POST")

	admin.HandleFunc("/messages/{id}/read", s.ToggleMessageRead).Methods("POST")
	admin.HandleFunc("/messages/{id}/delete", s.DeleteMessage).Methods("POST")

	return r
}

// Page carries what the shared header and footer need.
type Page struct {
	Site   SiteContext
	Title  string
	Brand  string
	Nav    []content.Link
	Year   int
	Footer string
}

func (s *Server) page(r *http.Request, title string) Page {
	if title == "" {
		title = s.Content.Title
	}
	return Page{
		Site:   s.siteContext(r),
		Title:  title,
		Brand:  s.Content.Hero.Name,
		Nav:    s.Content.Nav,
		Year:   time.Now().Year(),
		Footer: s.Content.Footer,
	}
}

// render buffers the template so that a failing template produces a
// clean 500 instead of half a page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.Views.Render(&buf, name, data); err != nil {
		logger.Errorf("render %s: %v", name, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
