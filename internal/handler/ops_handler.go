package handler

import (
	"net/http"

	"Vega_Blog/internal/repository/interfaces"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

// OpsHandler 运维接口：清首页缓存、管理分组
type OpsHandler struct {
	cache  interfaces.FeedCache
	groups *service.GroupService
}

func NewOpsHandler(cache interfaces.FeedCache, groups *service.GroupService) *OpsHandler {
	return &OpsHandler{cache: cache, groups: groups}
}

// CacheClear 手动清掉首页流缓存，TTL 之外唯一的失效手段
func (h *OpsHandler) CacheClear(c *gin.Context) {
	deleted, err := h.cache.Clear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

type groupReq struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
}

func (h *OpsHandler) GroupCreate(c *gin.Context) {
	var req groupReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	group, err := h.groups.Create(req.Title, req.Slug, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// GroupDelete 删分组，分组下的帖子保留
func (h *OpsHandler) GroupDelete(c *gin.Context) {
	if err := h.groups.Delete(c.Param("slug")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
