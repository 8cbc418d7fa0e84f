package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avaheights/society-portal/internal/api/middleware"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func countingHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"notices":[],"count":0}`))
	})
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	cache := newFakeCache()
	cm := middleware.NewCacheMiddleware(cache)

	hits := 0
	handler := cm.Middleware(countingHandler(&hits))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/notices", nil))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/notices", nil))
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, `{"notices":[],"count":0}`, w.Body.String())
	assert.Equal(t, 1, hits)
}

func TestCacheMiddleware_OnlyConfiguredRoutes(t *testing.T) {
	cache := newFakeCache()
	cm := middleware.NewCacheMiddleware(cache)

	hits := 0
	handler := cm.Middleware(countingHandler(&hits))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/notices/search?q=water", nil))
		assert.Empty(t, w.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, hits)
}

func TestCacheMiddleware_SkipsNonGET(t *testing.T) {
	cache := newFakeCache()
	cm := middleware.NewCacheMiddleware(cache)

	hits := 0
	handler := cm.Middleware(countingHandler(&hits))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/notices", nil))
	assert.Empty(t, w.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)
	assert.Empty(t, cache.entries)
}

func TestCacheMiddleware_Invalidate(t *testing.T) {
	cache := newFakeCache()
	cm := middleware.NewCacheMiddleware(cache)

	hits := 0
	handler := cm.Middleware(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/notices", nil))
	assert.Equal(t, 1, hits)

	cm.Invalidate(httptest.NewRequest("POST", "/api/notices", nil), "/api/notices")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/notices", nil))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, hits)
}
