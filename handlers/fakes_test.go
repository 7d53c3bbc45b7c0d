package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Portfolio/content"
	"Portfolio/db"
	"Portfolio/mail"
	"Portfolio/models"
	"Portfolio/relay"
	"Portfolio/templates"
)

// memStore is an in-memory db.Store that counts calls per method and can
// be told to fail any of them.
type memStore struct {
	skills   []models.Skill
	projects []models.Project
	messages []models.ContactMessage
	calls    map[string]int
	fail     map[string]error
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{calls: map[string]int{}, fail: map[string]error{}}
}

func (m *memStore) hit(name string) error {
	m.calls[name]++
	return m.fail[name]
}

func (m *memStore) id() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func (m *memStore) ListSkills(ctx context.Context) ([]models.Skill, error) {
	if err := m.hit("ListSkills"); err != nil {
		return nil, err
	}
	out := append([]models.Skill(nil), m.skills...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *memStore) CreateSkill(ctx context.Context, s *models.Skill) error {
	if err := m.hit("CreateSkill"); err != nil {
		return err
	}
	s.ID = m.id()
	m.skills = append(m.skills, *s)
	return nil
}

func (m *memStore) UpdateSkill(ctx context.Context, s models.Skill) error {
	if err := m.hit("UpdateSkill"); err != nil {
		return err
	}
	for i := range m.skills {
		if m.skills[i].ID == s.ID {
			s.DisplayOrder = m.skills[i].DisplayOrder
			m.skills[i] = s
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memStore) DeleteSkill(ctx context.Context, id string) error {
	if err := m.hit("DeleteSkill"); err != nil {
		return err
	}
	for i := range m.skills {
		if m.skills[i].ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	if err := m.hit("ListProjects"); err != nil {
		return nil, err
	}
	out := append([]models.Project(nil), m.projects...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *memStore) CreateProject(ctx context.Context, p *models.Project) error {
	if err := m.hit("CreateProject"); err != nil {
		return err
	}
	p.ID = m.id()
	m.projects = append(m.projects, *p)
	return nil
}

func (m *memStore) UpdateProject(ctx context.Context, p models.Project) error {
	if err := m.hit("UpdateProject"); err != nil {
		return err
	}
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			p.DisplayOrder = m.projects[i].DisplayOrder
			m.projects[i] = p
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memStore) DeleteProject(ctx context.Context, id string) error {
	if err := m.hit("DeleteProject"); err != nil {
		return err
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memStore) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	if err := m.hit("ListMessages"); err != nil {
		return nil, err
	}
	return append([]models.ContactMessage(nil), m.messages...), nil
}

func (m *memStore) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	if err := m.hit("CreateMessage"); err != nil {
		return err
	}
	msg.ID = m.id()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	m.messages = append([]models.ContactMessage{*msg}, m.messages...)
	return nil
}

func (m *memStore) ToggleMessageRead(ctx context.Context, id string) error {
	if err := m.hit("ToggleMessageRead"); err != nil {
		return err
	}
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Read = !m.messages[i].Read
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *memStore) DeleteMessage(ctx context.Context, id string) error {
	if err := m.hit("DeleteMessage"); err != nil {
		return err
	}
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type memUsers struct {
	users []models.User
}

func (u *memUsers) UserByLogin(ctx context.Context, email string) (models.User, error) {
	for _, x := range u.users {
		if x.Email == email {
			return x, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (u *memUsers) UserByID(ctx context.Context, id int) (models.User, error) {
	for _, x := range u.users {
		if x.ID == id {
			return x, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (u *memUsers) UpsertAdmin(ctx context.Context, email, hash string) error {
	for i := range u.users {
		if u.users[i].Email == email {
			u.users[i].PasswordHash, u.users[i].Role = hash, models.RoleAdmin
			return nil
		}
	}
	u.users = append(u.users, models.User{ID: len(u.users) + 1, Email: email, PasswordHash: hash, Role: models.RoleAdmin})
	return nil
}

type recordingSender struct {
	sent []mail.Message
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg mail.Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

type testEnv struct {
	srv    *Server
	store  *memStore
	users  *memUsers
	sender *recordingSender
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	users := &memUsers{}
	sender := &recordingSender{}
	srv := &Server{
		Store:    store,
		Users:    users,
		Sessions: NewSessions("test-secret"),
		Relay: &relay.Service{
			Sender:      sender,
			Messages:    store,
			OwnerEmail:  "owner@example.com",
			OwnerName:   "Owner",
			NotifyFrom:  "Portfolio Contact <noreply@example.com>",
			ConfirmFrom: "Owner <noreply@example.com>",
		},
		Views:   templates.Parse(),
		Content: content.Default(),
	}
	return &testEnv{srv: srv, store: store, users: users, sender: sender, router: srv.Routes()}
}

// cookieFor registers a user with the given role and returns a session
// cookie for them.
func (e *testEnv) cookieFor(t *testing.T, role string) *http.Cookie {
	t.Helper()
	u := models.User{ID: len(e.users.users) + 1, Email: "me@example.com", Role: role}
	e.users.users = append(e.users.users, u)
	return e.cookieForUser(t, u)
}

// cookieForUser signs a session for u without touching the users table.
func (e *testEnv) cookieForUser(t *testing.T, u models.User) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := e.srv.Sessions.Issue(rec, u); err != nil {
		t.Fatalf("issue: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func (e *testEnv) addUser(t *testing.T, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	e.users.users = append(e.users.users, models.User{ID: len(e.users.users) + 1, Email: email, PasswordHash: string(hash), Role: role})
}

func (e *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
