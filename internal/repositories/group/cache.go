package group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/models"
)

const (
	// groupListKey is the Redis key holding the cached group list
	groupListKey = "groups:list"

	// defaultCacheTTL bounds staleness if an invalidation is ever lost
	defaultCacheTTL = time.Hour
)

// CacheConfig holds configuration for the read-through group cache
type CacheConfig struct {
	// RedisClient is the cache backend
	RedisClient *redis.Client

	// Inner is the durable repository the cache reads through to
	Inner Repository

	// TTL overrides the default cache entry lifetime
	TTL time.Duration
}

// cachedRepository decorates a Repository with a Redis read-through cache
// for the group list. Every mutation invalidates the cached list eagerly.
type cachedRepository struct {
	client *redis.Client
	inner  Repository
	ttl    time.Duration
}

// NewCache creates a cache-decorated group repository
func NewCache(cfg *CacheConfig) (*cachedRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Inner == nil {
		return nil, errors.New("inner repository cannot be nil")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &cachedRepository{
		client: cfg.RedisClient,
		inner:  cfg.Inner,
		ttl:    ttl,
	}, nil
}

// ListGroups serves the group list from Redis when present, falling back to
// the durable store and repopulating the cache on a miss. Cache failures are
// logged and degrade to direct reads, never to request failures.
func (c *cachedRepository) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	cached, err := c.client.Get(ctx, groupListKey).Result()
	if err == nil {
		var groups []*models.Group
		if err := json.Unmarshal([]byte(cached), &groups); err == nil {
			return &ListGroupsOutput{Groups: groups}, nil
		}
		zap.L().Warn("discarding unreadable group cache entry", zap.Error(err))
	} else if !errors.Is(err, redis.Nil) {
		zap.L().Warn("group cache read failed", zap.Error(err))
	}

	output, err := c.inner.ListGroups(ctx, input)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(output.Groups); err == nil {
		if err := c.client.Set(ctx, groupListKey, payload, c.ttl).Err(); err != nil {
			zap.L().Warn("group cache write failed", zap.Error(err))
		}
	}

	return output, nil
}

// GetGroup reads through to the durable store. Point lookups are rare enough
// that only the full list is cached.
func (c *cachedRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.Group, error) {
	return c.inner.GetGroup(ctx, input)
}

// CreateGroup persists through the inner repository and invalidates the cache
func (c *cachedRepository) CreateGroup(ctx context.Context, input *CreateGroupInput) (*models.Group, error) {
	created, err := c.inner.CreateGroup(ctx, input)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx)
	return created, nil
}

// UpdateGroup persists through the inner repository and invalidates the cache
func (c *cachedRepository) UpdateGroup(ctx context.Context, input *UpdateGroupInput) error {
	if err := c.inner.UpdateGroup(ctx, input); err != nil {
		return err
	}

	c.invalidate(ctx)
	return nil
}

// DeleteGroup persists through the inner repository and invalidates the cache
func (c *cachedRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if err := c.inner.DeleteGroup(ctx, input); err != nil {
		return err
	}

	c.invalidate(ctx)
	return nil
}

func (c *cachedRepository) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, groupListKey).Err(); err != nil {
		zap.L().Warn(fmt.Sprintf("failed to invalidate %s", groupListKey), zap.Error(err))
	}
}
