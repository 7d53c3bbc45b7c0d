package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"Portfolio/db"
	"Portfolio/logger"
	"Portfolio/models"
)

const (
	sessionCookie = "session_token"
	tokenIssuer   = "portfolio-admin"
)

type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the signed-in user as seen by the views.
type Session struct {
	UserID int
	Login  string
	Role   string
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == models.RoleAdmin }

// Sessions issues and verifies the JWT session cookie.
type Sessions struct {
	Key []byte
	TTL time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

func NewSessions(secret string) *Sessions {
	return &Sessions{Key: []byte(secret), TTL: time.Hour}
}

func (s *Sessions) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg: %v", t.Header["alg"])
		}
		return s.Key, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Issue signs a token for u and sets the session cookie.
func (s *Sessions) Issue(w http.ResponseWriter, u models.User) error {
	now := time.Now()
	exp := now.Add(s.TTL)
	claims := &Claims{
		UserID: u.ID,
		Login:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Issuer:    tokenIssuer,
		},
	}
	tokStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Key)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    tokStr,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	return nil
}

// FromRequest returns the session carried by the cookie, or nil.
func (s *Sessions) FromRequest(r *http.Request) *Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	cl, err := s.Parse(c.Value)
	if err != nil {
		return nil
	}
	return &Session{UserID: cl.UserID, Login: cl.Login, Role: cl.Role}
}

// Clear invalidates the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}

type sessionKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by RequireAdmin, if any.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

type LoginViewData struct {
	Page
	Email string
	Error string
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if sess := s.Sessions.FromRequest(r); sess.IsAdmin() {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		s.render(w, http.StatusOK, "login", LoginViewData{Page: s.page(r, "Sign In")})
		return
	}
	// POST
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.Form.Get("email"))
	pass := r.Form.Get("password")

	u, err := s.Users.UserByLogin(r.Context(), email)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(pass))
	} else if !errors.Is(err, db.ErrNotFound) {
		logger.Errorf("LoginHandler: load user %q: %v", email, err)
	}
	if err != nil {
		s.render(w, http.StatusUnauthorized, "login", LoginViewData{
			Page:  s.page(r, "Sign In"),
			Email: email,
			Error: "Invalid credentials",
		})
		return
	}

	if err := s.Sessions.Issue(w, u); err != nil {
		logger.Errorf("LoginHandler: sign token: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	logger.Infof("LoginHandler: %s signed in", u.Email)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// LogoutHandler - завершает сессию (очищает JWT-куку)
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type DeniedViewData struct {
	Page
}

// RequireAdmin gates the admin panel: no session sends the visitor to
// the sign-in page, a non-admin session gets the access-denied view.
// The role comes from the users table, not from the token, so a deleted
// or demoted account loses access on its next request.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claimed := s.Sessions.FromRequest(r)
		if claimed == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		u, err := s.Users.UserByID(r.Context(), claimed.UserID)
		if errors.Is(err, db.ErrNotFound) {
			logger.Warnf("RequireAdmin: session for unknown user id=%d", claimed.UserID)
			s.Sessions.Clear(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err != nil {
			logger.Errorf("RequireAdmin: load user id=%d: %v", claimed.UserID, err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		sess := &Session{UserID: u.ID, Login: u.Email, Role: u.Role}
		r = r.WithContext(withSession(r.Context(), sess))
		if !sess.IsAdmin() {
			s.render(w, http.StatusForbidden, "denied", DeniedViewData{Page: s.page(r, "Access Denied")})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SeedAdmin creates or resets the admin account from configuration.
func SeedAdmin(ctx context.Context, users db.Users, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return users.UpsertAdmin(ctx, email, string(hash))
}
