package handlers

import (
	"net/http"
	"strings"
	"time"
)

const (
	themeCookie  = "theme"
	themeDark    = "dark"
	themeLight   = "light"
	defaultTheme = themeDark
)

// SiteContext is the per-request state shared by every view: who is
// signed in and which theme is active. It is built once per request and
// passed down explicitly.
type SiteContext struct {
	Session *Session
	Theme   string
}

func (s *Server) siteContext(r *http.Request) SiteContext {
	sc := SiteContext{Theme: themeFromRequest(r)}
	if sess := SessionFrom(r.Context()); sess != nil {
		sc.Session = sess
	} else if s.Sessions != nil {
		sc.Session = s.Sessions.FromRequest(r)
	}
	return sc
}

func themeFromRequest(r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return defaultTheme
	}
	switch c.Value {
	case themeLight:
		return themeLight
	default:
		return themeDark
	}
}

// ToggleTheme flips between the dark and light theme and sends the
// visitor back where they came from.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := themeLight
	if themeFromRequest(r) == themeLight {
		next = themeDark
	}
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the local path of the referer, or "/".
func backTo(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := r.URL.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	if u.Path == "" || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
