package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"Portfolio/logger"
)

func (s *Server) ToggleMessageRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.Store.ToggleMessageRead(r.Context(), id); err != nil {
		logger.Errorf("ToggleMessageRead: id=%s: %v", id, err)
		notifyErr(w, r, tabMessages, "Failed to update message")
		return
	}
	http.Redirect(w, r, "/admin?tab="+tabMessages, http.StatusSeeOther)
}

func (s *Server) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.Store.DeleteMessage(r.Context(), id); err != nil {
		logger.Errorf("DeleteMessage: id=%s: %v", id, err)
		notifyErr(w, r, tabMessages, "Failed to delete message")
		return
	}
	notifyOK(w, r, tabMessages, "Message deleted")
}
