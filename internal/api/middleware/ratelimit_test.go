package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hr-recruiting-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memoryCounterStore is an in-process CounterStore with real window expiry,
// driven by a fake clock.
type memoryCounterStore struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Time
	now     time.Time
	err     error
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Time),
		now:     time.Now(),
	}
}

func (s *memoryCounterStore) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

func (s *memoryCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if expiry, ok := s.expires[key]; !ok || s.now.After(expiry) {
		s.counts[key] = 0
		s.expires[key] = s.now.Add(window)
	}
	s.counts[key]++
	return s.counts[key], nil
}

func newRateLimitRouter(store middleware.CounterStore, cfg middleware.RateLimitConfig) *gin.Engine {
	r := gin.New()
	r.POST("/login", middleware.RateLimitMiddleware(store, cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	store := newMemoryCounterStore()
	r := newRateLimitRouter(store, middleware.LoginRateLimit)

	for i := 0; i < 5; i++ {
		w := hit(r, "10.0.0.1")
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("request %d should pass", i+1))
	}

	w := hit(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many login attempts")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimitMiddleware_PerClientCounters(t *testing.T) {
	store := newMemoryCounterStore()
	r := newRateLimitRouter(store, middleware.LoginRateLimit)

	for i := 0; i < 6; i++ {
		hit(r, "10.0.0.1")
	}

	// A different client is unaffected.
	w := hit(r, "10.0.0.2")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_WindowResets(t *testing.T) {
	store := newMemoryCounterStore()
	r := newRateLimitRouter(store, middleware.LoginRateLimit)

	for i := 0; i < 6; i++ {
		hit(r, "10.0.0.1")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)

	store.advance(16 * time.Minute)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
}

func TestRateLimitMiddleware_FailsOpenOnStoreError(t *testing.T) {
	store := newMemoryCounterStore()
	store.err = errors.New("connection refused")
	r := newRateLimitRouter(store, middleware.LoginRateLimit)

	w := hit(r, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_SeparateLimitsDoNotCollide(t *testing.T) {
	store := newMemoryCounterStore()

	r := gin.New()
	r.POST("/login", middleware.RateLimitMiddleware(store, middleware.LoginRateLimit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	r.POST("/register", middleware.RateLimitMiddleware(store, middleware.RegisterRateLimit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	}

	// The register limit keeps its own counter for the same IP.
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
