// Package cache holds a small redis-backed cache for the catalog read path.
// The experience list is read-mostly and only changes when the catalog
// consumer applies an upsert, so it tolerates a short TTL. Seat availability
// is never cached.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bookit/reservation-api/internal/models"
	"github.com/redis/go-redis/v9"
)

const experiencesKey = "catalog:experiences"

type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache wraps a redis client. A nil client yields a cache whose
// lookups always miss, so callers never branch on redis being configured.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetExperiences(ctx context.Context) ([]models.Experience, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, experiencesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var exps []models.Experience
	if err := json.Unmarshal(raw, &exps); err != nil {
		return nil, false
	}
	return exps, true
}

func (c *CatalogCache) SetExperiences(ctx context.Context, exps []models.Experience) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(exps)
	if err != nil {
		return
	}
	c.client.Set(ctx, experiencesKey, raw, c.ttl)
}

func (c *CatalogCache) InvalidateExperiences(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, experiencesKey)
}
