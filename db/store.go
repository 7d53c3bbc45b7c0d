package db

import (
	"context"
	"errors"
	"strings"

	"Portfolio/models"
)

// ErrNotFound is returned when an update or delete matched no row.
var ErrNotFound = errors.New("db: row not found")

// Store is the per-table query interface used by the site and the admin
// panel. Lists are ordered by display order (messages: newest first).
type Store interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, s *models.Skill) error
	UpdateSkill(ctx context.Context, s models.Skill) error
	DeleteSkill(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id string) error

	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	CreateMessage(ctx context.Context, m *models.ContactMessage) error
	ToggleMessageRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

// Users backs the sign-in flow.
type Users interface {
	UserByLogin(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id int) (models.User, error)
	UpsertAdmin(ctx context.Context, email, passwordHash string) error
}

// Backend is a full storage implementation.
type Backend interface {
	Store
	Users
	Close()
}

const sqlitePrefix = "sqlite:"

// Open picks the backend from the URL scheme: "sqlite:<path>" opens a
// local SQLite file, anything else is handed to pgx.
func Open(ctx context.Context, url string) (Backend, error) {
	if strings.HasPrefix(url, sqlitePrefix) {
		return OpenSQLite(strings.TrimPrefix(url, sqlitePrefix))
	}
	return OpenPostgres(ctx, url)
}
