package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"Portfolio/logger"
	"Portfolio/models"
)

func skillFromForm(r *http.Request) models.Skill {
	return models.Skill{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Category: strings.TrimSpace(r.FormValue("category")),
		Level:    models.ParseLevel(r.FormValue("level")),
		Icon:     models.OptionalString(r.FormValue("icon")),
	}
}

// CreateSkill appends a skill at the end of the display order.
func (s *Server) CreateSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		notifyErr(w, r, tabSkills, "Failed to add skill")
		return
	}
	sk := skillFromForm(r)
	if sk.Name == "" {
		notifyErr(w, r, tabSkills, "Please enter a skill name")
		return
	}

	existing, err := s.Store.ListSkills(r.Context())
	if err != nil {
		logger.Errorf("CreateSkill: count skills: %v", err)
		notifyErr(w, r, tabSkills, "Failed to add skill")
		return
	}
	sk.DisplayOrder = len(existing)

	if err := s.Store.CreateSkill(r.Context(), &sk); err != nil {
		logger.Errorf("CreateSkill: insert %q: %v", sk.Name, err)
		notifyErr(w, r, tabSkills, "Failed to add skill")
		return
	}
	notifyOK(w, r, tabSkills, "Skill added successfully")
}

func (s *Server) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		notifyErr(w, r, tabSkills, "Failed to update skill")
		return
	}
	sk := skillFromForm(r)
	sk.ID = mux.Vars(r)["id"]
	if sk.Name == "" {
		notifyErr(w, r, tabSkills, "Please enter a skill name")
		return
	}
	if err := s.Store.UpdateSkill(r.Context(), sk); err != nil {
		logger.Errorf("UpdateSkill: id=%s: %v", sk.ID, err)
		notifyErr(w, r, tabSkills, "Failed to update skill")
		return
	}
	notifyOK(w, r, tabSkills, "Skill updated")
}

func (s *Server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.Store.DeleteSkill(r.Context(), id); err != nil {
		logger.Errorf("DeleteSkill: id=%s: %v", id, err)
		notifyErr(w, r, tabSkills, "Failed to delete skill")
		return
	}
	notifyOK(w, r, tabSkills, "Skill deleted")
}
