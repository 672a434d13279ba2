package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// CounterStore counts hits inside a fixed window. Increment returns the
// window's running total after adding this hit; the first hit of a window
// starts its TTL.
type CounterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounterStore implements CounterStore on Redis INCR + EXPIRE, so the
// counters survive restarts and are shared across replicas.
type RedisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore creates a CounterStore backed by the given client.
func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

var _ CounterStore = (*RedisCounterStore)(nil)

func (s *RedisCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment rate counter %s: %w", key, err)
	}
	return incr.Val(), nil
}

// RateLimitConfig describes one fixed-window limit.
type RateLimitConfig struct {
	// Name scopes the counter keys so different limits never collide.
	Name    string
	Limit   int64
	Window  time.Duration
	Message string
}

// Preconfigured limits for the auth-sensitive and general surfaces.
var (
	LoginRateLimit = RateLimitConfig{
		Name:    "login",
		Limit:   5,
		Window:  15 * time.Minute,
		Message: "Too many login attempts, please try again later",
	}
	RegisterRateLimit = RateLimitConfig{
		Name:    "register",
		Limit:   10,
		Window:  time.Hour,
		Message: "Too many accounts created, please try again later",
	}
	GeneralRateLimit = RateLimitConfig{
		Name:    "general",
		Limit:   60,
		Window:  time.Minute,
		Message: "Too many requests, please try again later",
	}
)

// RateLimitMiddleware enforces a fixed-window per-client-IP limit. Counter
// store failures fail open: a Redis outage must not take the API down with
// it.
func RateLimitMiddleware(store CounterStore, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", cfg.Name, c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warnf("Rate limiter: counter store error, allowing request: %v", err)
			c.Next()
			return
		}

		if count > cfg.Limit {
			log.Infof("Rate limiter: blocked %s on %s limit (%d/%d)", c.ClientIP(), cfg.Name, count, cfg.Limit)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   cfg.Message,
			})
			return
		}

		c.Next()
	}
}
