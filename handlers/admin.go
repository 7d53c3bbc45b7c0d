package handlers

import (
	"net/http"
	"net/url"

	"Portfolio/logger"
	"Portfolio/models"
)

const (
	tabSkills   = "skills"
	tabProjects = "projects"
	tabMessages = "messages"
	tabSettings = "settings"
)

// AdminViewData - контекст для admin.html
type AdminViewData struct {
	Page
	ActiveTab    string
	Skills       []models.Skill
	Projects     []models.Project
	Messages     []models.ContactMessage
	Unread       int
	EditID       string
	BlankProject models.Project
	CurrentLogin string
	Notice       string
	Error        string
}

// AdminDashboard - единая точка входа в админку. Every render re-reads
// all three tables; writes never patch local state.
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := AdminViewData{
		Page:         s.page(r, "Admin Panel"),
		ActiveTab:    normalizeTab(q.Get("tab")),
		EditID:       q.Get("edit"),
		BlankProject: models.Project{Status: models.StatusCompleted},
		Notice:       q.Get("ok"),
		Error:        q.Get("err"),
	}
	if sess := data.Site.Session; sess != nil {
		data.CurrentLogin = sess.Login
	}

	ctx := r.Context()
	var err error
	if data.Skills, err = s.Store.ListSkills(ctx); err != nil {
		logger.Errorf("AdminDashboard: load skills: %v", err)
	}
	if data.Projects, err = s.Store.ListProjects(ctx); err != nil {
		logger.Errorf("AdminDashboard: load projects: %v", err)
	}
	if data.Messages, err = s.Store.ListMessages(ctx); err != nil {
		logger.Errorf("AdminDashboard: load messages: %v", err)
	}
	data.Unread = models.CountUnread(data.Messages)

	s.render(w, http.StatusOK, "admin", data)
}

func normalizeTab(tab string) string {
	switch tab {
	case tabProjects, tabMessages, tabSettings:
		return tab
	default:
		return tabSkills
	}
}

func notifyOK(w http.ResponseWriter, r *http.Request, tab, msg string) {
	redirectAdmin(w, r, tab, "ok", msg)
}

func notifyErr(w http.ResponseWriter, r *http.Request, tab, msg string) {
	redirectAdmin(w, r, tab, "err", msg)
}

// redirectAdmin sends the browser back to a tab with a one-shot notice.
func redirectAdmin(w http.ResponseWriter, r *http.Request, tab, kind, msg string) {
	v := url.Values{}
	v.Set("tab", tab)
	v.Set(kind, msg)
	http.Redirect(w, r, "/admin?"+v.Encode(), http.StatusSeeOther)
}
