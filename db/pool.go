package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"Portfolio/models"
)

// Postgres is the production backend.
type Postgres struct {
	Pool *pgxpool.Pool
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS skills (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    level INT NOT NULL DEFAULT 0,
    icon TEXT,
    display_order INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    tech_stack TEXT[] NOT NULL DEFAULT '{}',
    github_url TEXT,
    live_url TEXT,
    image_url TEXT,
    featured BOOLEAN NOT NULL DEFAULT false,
    category TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'completed',
    display_order INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contact_messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    read BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Columns added after the first release.
const postgresAlters = `
ALTER TABLE projects ADD COLUMN IF NOT EXISTS category TEXT NOT NULL DEFAULT '';
ALTER TABLE projects ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'completed';
`

// OpenPostgres connects and makes sure the tables exist.
func OpenPostgres(ctx context.Context, url string) (*Postgres, error) {
	p, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if _, err := p.Exec(ctx, postgresSchema); err != nil {
		p.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}
	if _, err := p.Exec(ctx, postgresAlters); err != nil {
		p.Close()
		return nil, fmt.Errorf("db alter: %w", err)
	}
	return &Postgres{Pool: p}, nil
}

func (s *Postgres) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Postgres) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.Pool.Query(ctx, `
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
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.Icon, &sk.DisplayOrder); err != nil {
			return nil, err
		}
		list = append(list, sk)
	}
	return list, rows.Err()
}

func (s *Postgres) CreateSkill(ctx context.Context, sk *models.Skill) error {
	if sk.ID == "" {
		sk.ID = uuid.NewString()
	}
	_, err := s.Pool.Exec(ctx,
		"INSERT INTO skills(id,name,category,level,icon,display_order) VALUES($1,$2,$3,$4,$5,$6)",
		sk.ID, sk.Name, sk.Category, sk.Level, sk.Icon, sk.DisplayOrder)
	return err
}

func (s *Postgres) UpdateSkill(ctx context.Context, sk models.Skill) error {
	tag, err := s.Pool.Exec(ctx,
		"UPDATE skills SET name=$1, category=$2, level=$3, icon=$4 WHERE id=$5",
		sk.Name, sk.Category, sk.Level, sk.Icon, sk.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteSkill(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "skills", id)
}

func (s *Postgres) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.Pool.Query(ctx, `
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
		var p models.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack,
			&p.GitHubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.Category,
			&status, &p.DisplayOrder); err != nil {
			return nil, err
		}
		p.Status = models.ParseProjectStatus(status)
		list = append(list, p)
	}
	return list, rows.Err()
}

func (s *Postgres) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	_, err := s.Pool.Exec(ctx, `
INSERT INTO projects(id,title,description,tech_stack,github_url,live_url,image_url,featured,category,status,display_order)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.Title, p.Description, p.TechStack, p.GitHubURL, p.LiveURL,
		p.ImageURL, p.Featured, p.Category, string(p.Status), p.DisplayOrder)
	return err
}

func (s *Postgres) UpdateProject(ctx context.Context, p models.Project) error {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	tag, err := s.Pool.Exec(ctx, `
UPDATE projects SET
  title=$1, description=$2, tech_stack=$3, github_url=$4, live_url=$5,
  image_url=$6, featured=$7, category=$8, status=$9
WHERE id=$10`,
		p.Title, p.Description, p.TechStack, p.GitHubURL, p.LiveURL,
		p.ImageURL, p.Featured, p.Category, string(p.Status), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "projects", id)
}

func (s *Postgres) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.Pool.Query(ctx, `
    SELECT id, name, email, message, read, created_at
      FROM contact_messages
  ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (s *Postgres) CreateMessage(ctx context.Context, m *models.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := s.Pool.Exec(ctx,
		"INSERT INTO contact_messages(id,name,email,message,read,created_at) VALUES($1,$2,$3,$4,$5,$6)",
		m.ID, m.Name, m.Email, m.Message, m.Read, m.CreatedAt)
	return err
}

func (s *Postgres) ToggleMessageRead(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, "UPDATE contact_messages SET read = NOT read WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteMessage(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contact_messages", id)
}

// table is always one of the constants above, never user input.
func (s *Postgres) deleteByID(ctx context.Context, table, id string) error {
	tag, err := s.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) UserByLogin(ctx context.Context, email string) (models.User, error) {
	return s.scanUser(s.Pool.QueryRow(ctx,
		"SELECT id, email, password_hash, role FROM users WHERE email=$1", email))
}

func (s *Postgres) UserByID(ctx context.Context, id int) (models.User, error) {
	return s.scanUser(s.Pool.QueryRow(ctx,
		"SELECT id, email, password_hash, role FROM users WHERE id=$1", id))
}

func (s *Postgres) scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *Postgres) UpsertAdmin(ctx context.Context, email, passwordHash string) error {
	_, err := s.Pool.Exec(ctx, `
INSERT INTO users(email, password_hash, role) VALUES ($1, $2, 'admin')
ON CONFLICT (email) DO UPDATE SET
  password_hash = EXCLUDED.password_hash,
  role = 'admin'`, email, passwordHash)
	return err
}
