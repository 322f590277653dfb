package router

import (
	"Vega_Blog/internal/handler"
	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/repository/interfaces"
	"Vega_Blog/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Feed    *handler.FeedHandler
	Post    *handler.PostHandler
	Comment *handler.CommentHandler
	Follow  *handler.FollowHandler
	Like    *handler.LikeHandler
	User    *handler.UserHandler
	Ops     *handler.OpsHandler

	FeedCache interfaces.FeedCache
	UploadDir string
}

// InitRouter 路由表。写接口一律 POST，读接口不会改状态；
// 需要登录的接口挂 RequireLogin，匿名请求 302 到登录页带 next。
func InitRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Auth())

	// 首页流（含标签变体）是全站唯一挂整页缓存的视图
	cached := middleware.CachePage(h.FeedCache, redis.IndexCacheTTL)
	r.GET("/", cached, h.Feed.Index)
	r.GET("/tag/:slug", cached, h.Feed.Index)

	// 只读视图
	r.GET("/search/", h.Feed.Search)
	r.GET("/group/:slug/", h.Feed.Group)
	r.GET("/groups/", h.Feed.Groups)
	r.GET("/profile/:username/", h.Feed.Profile)
	r.GET("/authors/", h.Feed.Authors)
	r.GET("/posts/:id/", h.Post.Detail)

	// 登录态视图和写操作
	auth := r.Group("")
	auth.Use(middleware.RequireLogin())
	{
		auth.GET("/follow/", h.Feed.Following)
		auth.POST("/create/", h.Post.Create)
		auth.POST("/posts/:id/edit/", h.Post.Edit)
		auth.POST("/posts/:id/delete/", h.Post.Delete)
		auth.POST("/posts/:id/like/", h.Like.Like)
		auth.POST("/posts/:id/unlike/", h.Like.Unlike)
		auth.POST("/posts/:id/comment/", h.Comment.Add)
		auth.POST("/comment/:id/del", h.Comment.Delete)
		auth.POST("/profile/:username/follow/", h.Follow.Follow)
		auth.POST("/profile/:username/unfollow/", h.Follow.Unfollow)
	}

	// 账号相关接口
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup/", h.User.Signup)
		authGroup.GET("/login/", h.User.LoginPage)
		authGroup.POST("/login/", h.User.Login)
		authGroup.POST("/logout/", h.User.Logout)
	}
	profileGroup := r.Group("/auth")
	profileGroup.Use(middleware.RequireLogin())
	{
		profileGroup.GET("/profile/", h.User.Profile)
		profileGroup.POST("/profile/", h.User.UpdateProfile)
	}

	// 运维接口同样要登录态，匿名请求不能动分组和缓存
	internalGroup := r.Group("/internal")
	internalGroup.Use(middleware.RequireLogin())
	{
		internalGroup.POST("/cache/clear", h.Ops.CacheClear)
		internalGroup.POST("/groups/", h.Ops.GroupCreate)
		internalGroup.POST("/groups/:slug/delete", h.Ops.GroupDelete)
	}

	// 上传的图片
	r.Static("/media", h.UploadDir)

	return r
}
