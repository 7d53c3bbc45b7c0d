package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"Portfolio/logger"
	"Portfolio/models"
)

const (
	skillsCacheKey   = "portfolio:skills"
	projectsCacheKey = "portfolio:projects"
	// generationKey is bumped by every write. A list read from the store
	// is cached only if no write happened since the read started.
	generationKey = "portfolio:generation"
)

var errStaleRead = errors.New("cache: write happened during read")

// Cache wraps a Store with Redis-backed caching for the public reads.
// Every skill or project write evicts both keys.
type Cache struct {
	Store
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching Store using the provided Redis client and TTL.
// A nil client or a zero TTL disables caching.
func NewCache(base Store, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("db.NewCache: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{Store: base, redis: client, ttl: ttl}
}

func (c *Cache) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if c.load(ctx, skillsCacheKey, &skills) {
		return skills, nil
	}
	gen := c.generation(ctx)
	skills, err := c.Store.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, skillsCacheKey, skills, gen)
	return skills, nil
}

func (c *Cache) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if c.load(ctx, projectsCacheKey, &projects) {
		return projects, nil
	}
	gen := c.generation(ctx)
	projects, err := c.Store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, projectsCacheKey, projects, gen)
	return projects, nil
}

func (c *Cache) CreateSkill(ctx context.Context, s *models.Skill) error {
	return c.evictAfter(ctx, c.Store.CreateSkill(ctx, s))
}

func (c *Cache) UpdateSkill(ctx context.Context, s models.Skill) error {
	return c.evictAfter(ctx, c.Store.UpdateSkill(ctx, s))
}

func (c *Cache) DeleteSkill(ctx context.Context, id string) error {
	return c.evictAfter(ctx, c.Store.DeleteSkill(ctx, id))
}

func (c *Cache) CreateProject(ctx context.Context, p *models.Project) error {
	return c.evictAfter(ctx, c.Store.CreateProject(ctx, p))
}

func (c *Cache) UpdateProject(ctx context.Context, p models.Project) error {
	return c.evictAfter(ctx, c.Store.UpdateProject(ctx, p))
}

func (c *Cache) DeleteProject(ctx context.Context, id string) error {
	return c.evictAfter(ctx, c.Store.DeleteProject(ctx, id))
}

func (c *Cache) load(ctx context.Context, key string, dst any) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			// On redis errors fall back to the backing store without failing.
			logger.WithError(err).Warnf("cache get %s", key)
			_ = c.redis.Del(ctx, key).Err()
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) generation(ctx context.Context) int64 {
	if c.redis == nil {
		return 0
	}
	gen, err := c.redis.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		logger.WithError(err).Warnf("cache get %s", generationKey)
	}
	return gen
}

// store caches v under key unless the generation moved past gen.
func (c *Cache) store(ctx context.Context, key string, v any, gen int64) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return errStaleRead
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	switch {
	case err == nil, errors.Is(err, errStaleRead), errors.Is(err, redis.TxFailedErr):
	default:
		logger.WithError(err).Warnf("cache set %s", key)
	}
}

// evictAfter bumps the generation and drops the cached lists whether or
// not the write succeeded.
func (c *Cache) evictAfter(ctx context.Context, err error) error {
	if c.redis != nil {
		_, _ = c.redis.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Incr(ctx, generationKey)
			p.Del(ctx, skillsCacheKey, projectsCacheKey)
			return nil
		})
	}
	return err
}
