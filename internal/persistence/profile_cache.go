package persistence

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/internlink/internal/domain"
)

const profileCacheKeyPrefix = "candidate_profile:"

// ProfileCache is a Redis-backed read cache for candidate profiles keyed by
// email. Redis outages degrade to cache misses; the database stays the
// source of truth.
type ProfileCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewProfileCache builds the cache.
func NewProfileCache(r *Redis, ttl time.Duration, logger *zap.Logger) *ProfileCache {
	return &ProfileCache{redis: r, ttl: ttl, logger: logger}
}

// Get returns the cached profile for email, or false on miss.
func (c *ProfileCache) Get(ctx context.Context, email string) (*domain.CandidateProfile, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	data, err := c.redis.Client.Get(ctx, profileCacheKeyPrefix+email).Bytes()
	if err != nil {
		return nil, false
	}
	var profile domain.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		c.logger.Warn("corrupt profile cache entry", zap.String("email", email), zap.Error(err))
		return nil, false
	}
	return &profile, true
}

// Set stores the profile under the email key with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, email string, profile *domain.CandidateProfile) {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, profileCacheKeyPrefix+email, data, c.ttl).Err(); err != nil {
		c.logger.Warn("profile cache set failed", zap.String("email", email), zap.Error(err))
	}
}

// Invalidate removes the cached profile for email.
func (c *ProfileCache) Invalidate(ctx context.Context, email string) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, profileCacheKeyPrefix+email).Err(); err != nil {
		c.logger.Warn("profile cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
