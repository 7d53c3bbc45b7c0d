package handlers

import (
	"net/http"
	"strings"

	"Portfolio/content"
	"Portfolio/logger"
	"Portfolio/models"
	"Portfolio/relay"
)

type IndexPageData struct {
	Page
	Content        content.Site
	SkillGroups    []models.SkillGroup
	Projects       []models.Project
	Categories     []string
	ActiveCategory string
	ContactStatus  string
}

// Index renders the public one-page site. Store errors are logged and
// the affected section renders as empty.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills, err := s.Store.ListSkills(ctx)
	if err != nil {
		logger.Errorf("Index: load skills: %v", err)
		skills = nil
	}
	projects, err := s.Store.ListProjects(ctx)
	if err != nil {
		logger.Errorf("Index: load projects: %v", err)
		projects = nil
	}

	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	if category == "" {
		category = "all"
	}

	data := IndexPageData{
		Page:           s.page(r, ""),
		Content:        s.Content,
		SkillGroups:    models.GroupSkills(skills),
		Projects:       models.FilterProjects(projects, category),
		Categories:     models.ProjectCategories(projects),
		ActiveCategory: category,
		ContactStatus:  r.URL.Query().Get("contact"),
	}
	s.render(w, http.StatusOK, "index", data)
}

// ContactSubmit handles the contact form on the public page by running
// the relay in-process.
func (s *Server) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?contact=error#contact", http.StatusSeeOther)
		return
	}
	sub := relay.Submission{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}
	if err := s.Relay.Submit(r.Context(), sub); err != nil {
		logger.Errorf("ContactSubmit: %v", err)
		http.Redirect(w, r, "/?contact=error#contact", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/?contact=ok#contact", http.StatusSeeOther)
}
