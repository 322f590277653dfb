package middleware

import (
	"net/http"
	"net/url"

	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	SessionCookie      = "session"
	LoginPath          = "/auth/login/"
)

// Auth 可选登录态：cookie 里的会话合法就注入 user_id，不合法照样放行。
// 只读视图靠它区分登录/匿名，永远不拦请求。
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := pkg.ParseSession(token)
		if err != nil {
			c.Next()
			return
		}

		// redis里的token才算数，登出后cookie残留无效
		sessions := &redis.UserRepository{}
		origin, err := sessions.GetUserToken(claims.UserID)
		if err != nil || origin != token {
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// RequireLogin 写操作的登录门槛。匿名请求 302 到登录页，
// next 带上原路径，登录完成后接着做原来的事。
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserIDKey); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID 从上下文取当前用户，未登录返回 0
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
