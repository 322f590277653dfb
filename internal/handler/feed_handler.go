package handler

import (
	"net/http"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feed   *service.FeedService
	follow *service.FollowService
}

func NewFeedHandler(feed *service.FeedService, follow *service.FollowService) *FeedHandler {
	return &FeedHandler{feed: feed, follow: follow}
}

// Index 全站流；/tag/:slug 复用本接口，slug 为空就是不过滤
func (h *FeedHandler) Index(c *gin.Context) {
	page, tag, err := h.feed.Index(pageParam(c), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{"page_obj": page}
	if tag != nil {
		resp["tag"] = tag
	}
	c.JSON(http.StatusOK, resp)
}

// Search 正文搜索，?q= 为空返回空结果页
func (h *FeedHandler) Search(c *gin.Context) {
	page, err := h.feed.Search(c.Query("q"), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_obj": page, "q": c.Query("q")})
}

// Group 分组流
func (h *FeedHandler) Group(c *gin.Context) {
	group, page, err := h.feed.Group(c.Param("slug"), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "page_obj": page})
}

// Groups 全部分组
func (h *FeedHandler) Groups(c *gin.Context) {
	groups, err := h.feed.Groups()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Profile 个人主页流；登录访客附带是否已关注该作者
func (h *FeedHandler) Profile(c *gin.Context) {
	author, page, err := h.feed.Profile(c.Param("username"), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{
		"author":   gin.H{"id": author.ID, "username": author.Username},
		"page_obj": page,
	}
	if viewerID := middleware.UserID(c); viewerID != 0 && viewerID != author.ID {
		if following, err := h.follow.IsFollowing(c.Request.Context(), viewerID, author.ID); err == nil {
			resp["following"] = following
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Following 关注流，路由挂了 RequireLogin
func (h *FeedHandler) Following(c *gin.Context) {
	page, err := h.feed.Following(middleware.UserID(c), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_obj": page})
}

// Authors 作者榜单；榜首字段空集合时直接省略
func (h *FeedHandler) Authors(c *gin.Context) {
	board, err := h.feed.Authors(pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
