package handler

import (
	"fmt"
	"net/http"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Like 点赞。给自己点赞静默忽略，结果都是跳回详情页
func (h *LikeHandler) Like(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Like(c.Request.Context(), middleware.UserID(c), postID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}

// Unlike 取消点赞，幂等
func (h *LikeHandler) Unlike(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Unlike(c.Request.Context(), middleware.UserID(c), postID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}
