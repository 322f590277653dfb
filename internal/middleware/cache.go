package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"Vega_Blog/internal/repository/interfaces"
	"Vega_Blog/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CachePage 首页流的整页缓存。键=前缀+标签+页码，命中直接回写；
// 未命中放行并在 200 时把响应体存进去。写帖子不会清这份缓存，
// 过期只靠 TTL。其他视图不挂这个中间件，永远是强一致读。
func CachePage(cache interfaces.FeedCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.Query("page"))
		key := redis.IndexKey(c.Param("slug"), page)

		if body, ok, err := cache.Get(c.Request.Context(), key); err == nil && ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			_ = cache.Set(c.Request.Context(), key, w.body.Bytes(), ttl)
		}
	}
}
