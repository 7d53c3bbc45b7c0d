package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"Portfolio/models"
)

// SQLite is the local development backend. Tech stacks are stored as
// JSON text and timestamps as unix milliseconds.
type SQLite struct {
	DB *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS skills (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    level INTEGER NOT NULL DEFAULT 0,
    icon TEXT,
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    tech_stack TEXT NOT NULL DEFAULT '[]',
    github_url TEXT,
    live_url TEXT,
    image_url TEXT,
    featured INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'completed',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contact_messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    read INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);
`

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single writer keeps SQLITE_BUSY out of the request path
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLite{DB: sqlDB}, nil
}

func (s *SQLite) Close() {
	if s.DB != nil {
		_ = s.DB.Close()
	}
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func (s *SQLite) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, name, category, level, icon, display_order
      FROM skills
  ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Skill
	for rows.Next() {
		var sk models.Skill
		var icon sql.NullString
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &icon, &sk.DisplayOrder); err != nil {
			return nil, err
		}
		sk.Icon = nullString(icon)
		list = append(list, sk)
	}
	return list, rows.Err()
}

func (s *SQLite) CreateSkill(ctx context.Context, sk *models.Skill) error {
	if sk.ID == "" {
		sk.ID = uuid.NewString()
	}
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO skills(id,name,category,level,icon,display_order) VALUES(?,?,?,?,?,?)",
		sk.ID, sk.Name, sk.Category, sk.Level, sk.Icon, sk.DisplayOrder)
	return err
}

func (s *SQLite) UpdateSkill(ctx context.Context, sk models.Skill) error {
	return s.execOne(ctx,
		"UPDATE skills SET name=?, category=?, level=?, icon=? WHERE id=?",
		sk.Name, sk.Category, sk.Level, sk.Icon, sk.ID)
}

func (s *SQLite) DeleteSkill(ctx context.Context, id string) error {
	return s.execOne(ctx, "DELETE FROM skills WHERE id=?", id)
}

func (s *SQLite) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, title, description, tech_stack, github_url, live_url,
           image_url, featured, category, status, display_order
      FROM projects
  ORDER BY display_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Project
	for rows.Next() {
		var (
			p             models.Project
			stack, status string
			gh, live, img sql.NullString
			featured      int64
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &stack, &gh, &live,
			&img, &featured, &p.Category, &status, &p.DisplayOrder); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(stack), &p.TechStack); err != nil {
			return nil, fmt.Errorf("decode tech stack of %s: %w", p.ID, err)
		}
		p.GitHubURL, p.LiveURL, p.ImageURL = nullString(gh), nullString(live), nullString(img)
		p.Featured = featured != 0
		p.Status = models.ParseProjectStatus(status)
		list = append(list, p)
	}
	return list, rows.Err()
}

func encodeStack(stack []string) (string, error) {
	if stack == nil {
		stack = []string{}
	}
	b, err := json.Marshal(stack)
	return string(b), err
}

func (s *SQLite) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	stack, err := encodeStack(p.TechStack)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, `
INSERT INTO projects(id,title,description,tech_stack,github_url,live_url,image_url,featured,category,status,display_order)
VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Title, p.Description, stack, p.GitHubURL, p.LiveURL,
		p.ImageURL, p.Featured, p.Category, string(p.Status), p.DisplayOrder)
	return err
}

func (s *SQLite) UpdateProject(ctx context.Context, p models.Project) error {
	stack, err := encodeStack(p.TechStack)
	if err != nil {
		return err
	}
	return s.execOne(ctx, `
UPDATE projects SET
  title=?, description=?, tech_stack=?, github_url=?, live_url=?,
  image_url=?, featured=?, category=?, status=?
WHERE id=?`,
		p.Title, p.Description, stack, p.GitHubURL, p.LiveURL,
		p.ImageURL, p.Featured, p.Category, string(p.Status), p.ID)
}

func (s *SQLite) DeleteProject(ctx context.Context, id string) error {
	return s.execOne(ctx, "DELETE FROM projects WHERE id=?", id)
}

func (s *SQLite) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, name, email, message, read, created_at
      FROM contact_messages
  ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		var read, created int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &read, &created); err != nil {
			return nil, err
		}
		m.Read = read != 0
		m.CreatedAt = fromMillis(created)
		list = append(list, m)
	}
	return list, rows.Err()
}

func (s *SQLite) CreateMessage(ctx context.Context, m *models.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO contact_messages(id,name,email,message,read,created_at) VALUES(?,?,?,?,?,?)",
		m.ID, m.Name, m.Email, m.Message, m.Read, toMillis(m.CreatedAt))
	return err
}

func (s *SQLite) ToggleMessageRead(ctx context.Context, id string) error {
	return s.execOne(ctx, "UPDATE contact_messages SET read = NOT read WHERE id=?", id)
}

func (s *SQLite) DeleteMessage(ctx context.Context, id string) error {
	return s.execOne(ctx, "DELETE FROM contact_messages WHERE id=?", id)
}

func (s *SQLite) execOne(ctx context.Context, query string, args ...any) error {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) UserByLogin(ctx context.Context, email string) (models.User, error) {
	return scanSQLUser(s.DB.QueryRowContext(ctx,
		"SELECT id, email, password_hash, role FROM users WHERE email=?", email))
}

func (s *SQLite) UserByID(ctx context.Context, id int) (models.User, error) {
	return scanSQLUser(s.DB.QueryRowContext(ctx,
		"SELECT id, email, password_hash, role FROM users WHERE id=?", id))
}

func scanSQLUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *SQLite) UpsertAdmin(ctx context.Context, email, passwordHash string) error {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO users(email, password_hash, role) VALUES (?, ?, 'admin')
ON CONFLICT (email) DO UPDATE SET
  password_hash = excluded.password_hash,
  role = 'admin'`, email, passwordHash)
	return err
}
