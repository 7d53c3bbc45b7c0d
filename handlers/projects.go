// handlers/projects.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"Portfolio/logger"
	"Portfolio/models"
)

// projectFromForm reads the shared project form. Tech stack arrives as
// comma separated text; blank URLs become NULL.
func projectFromForm(r *http.Request) models.Project {
	return models.Project{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		TechStack:   models.ParseTechStack(r.FormValue("tech_stack")),
		GitHubURL:   models.OptionalString(r.FormValue("github_url")),
		LiveURL:     models.OptionalString(r.FormValue("live_url")),
		ImageURL:    models.OptionalString(r.FormValue("image_url")),
		Featured:    r.FormValue("featured") == "on",
		Category:    strings.ToLower(strings.TrimSpace(r.FormValue("category"))),
		Status:      models.ParseProjectStatus(r.FormValue("status")),
	}
}

func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		notifyErr(w, r, tabProjects, "Failed to add project")
		return
	}
	p := projectFromForm(r)
	if p.Title == "" || p.Description == "" {
		notifyErr(w, r, tabProjects, "Please fill in title and description")
		return
	}

	existing, err := s.Store.ListProjects(r.Context())
	if err != nil {
		logger.Errorf("CreateProject: count projects: %v", err)
		notifyErr(w, r, tabProjects, "Failed to add project")
		return
	}
	p.DisplayOrder = len(existing)

	if err := s.Store.CreateProject(r.Context(), &p); err != nil {
		logger.Errorf("CreateProject: insert %q: %v", p.Title, err)
		notifyErr(w, r, tabProjects, "Failed to add project")
		return
	}
	notifyOK(w, r, tabProjects, "Project added successfully")
}

func (s *Server) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		notifyErr(w, r, tabProjects, "Failed to update project")
		return
	}
	p := projectFromForm(r)
	p.ID = mux.Vars(r)["id"]
	if p.Title == "" || p.Description == "" {
		notifyErr(w, r, tabProjects, "Please fill in title and description")
		return
	}
	if err := s.Store.UpdateProject(r.Context(), p); err != nil {
		logger.Errorf("UpdateProject: id=%s: %v", p.ID, err)
		notifyErr(w, r, tabProjects, "Failed to update project")
		return
	}
	notifyOK(w, r, tabProjects, "Project updated")
}

func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.Store.DeleteProject(r.Context(), id); err != nil {
		logger.Errorf("DeleteProject: id=%s: %v", id, err)
		notifyErr(w, r, tabProjects, "Failed to delete project")
		return
	}
	notifyOK(w, r, tabProjects, "Project deleted")
}
