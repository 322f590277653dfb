package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memCache 测试用的内存版 FeedCache
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.data[key]
	return body, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, body []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = body
	return nil
}

func (c *memCache) Clear(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := int64(len(c.data))
	c.data = map[string][]byte{}
	return n, nil
}

func cacheTestRouter(cache *memCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", CachePage(cache, 20*time.Second), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"hits": *hits})
	})
	return r
}

// TestCachePageHit TTL 内第二次请求直接回缓存体，不再进 handler
func TestCachePageHit(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := cacheTestRouter(cache, &hits)

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, 1, hits)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 1, hits)
	// 缓存命中时响应体逐字节一致，哪怕数据已经变了
	assert.Equal(t, w1.Body.Bytes(), w2.Body.Bytes())
}

// TestCachePageKeyPerPage 不同页码是不同的缓存键
func TestCachePageKeyPerPage(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := cacheTestRouter(cache, &hits)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	assert.Equal(t, 2, hits)
	assert.Len(t, cache.data, 2)
}

// TestCachePageClear 手动清空后下一次请求重新进 handler
func TestCachePageClear(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := cacheTestRouter(cache, &hits)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	deleted, err := cache.Clear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 2, hits)
}

// TestCachePageSkipsErrors 非 200 响应不进缓存
func TestCachePageSkipsErrors(t *testing.T) {
	cache := newMemCache()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", CachePage(cache, 20*time.Second), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, cache.data)
}
