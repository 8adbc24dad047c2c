package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

const cacheKeyPrefix = "alchemorsel:catalog"

// CachedCatalog is a read-through Redis cache in front of another catalog.
// Redis failures are logged and the read falls through; misses are never cached.
type CachedCatalog struct {
	next   service.ICatalogService
	redis  redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedCatalog wraps next with a Redis cache whose entries expire after ttl
func NewCachedCatalog(next service.ICatalogService, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedCatalog {
	return &CachedCatalog{next: next, redis: client, ttl: ttl, logger: logger}
}

// GetRecipe implements service.ICatalogService
func (c *CachedCatalog) GetRecipe(ctx context.Context, id int) (*model.Recipe, error) {
	key := fmt.Sprintf("%s:recipe:%d", cacheKeyPrefix, id)

	var cached model.Recipe
	if c.load(ctx, key, &cached) {
		cached.ID = id
		return &cached, nil
	}

	recipe, err := c.next.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, recipe)
	return recipe, nil
}

// GetNutrition implements service.ICatalogService
func (c *CachedCatalog) GetNutrition(ctx context.Context, recipeID int) (*model.NutritionInfo, error) {
	key := fmt.Sprintf("%s:nutrition:%d", cacheKeyPrefix, recipeID)

	var cached model.NutritionInfo
	if c.load(ctx, key, &cached) {
		cached.RecipeID = recipeID
		return &cached, nil
	}

	info, err := c.next.GetNutrition(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, info)
	return info, nil
}

func (c *CachedCatalog) load(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}
