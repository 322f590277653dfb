package handler

import (
	"fmt"
	"net/http"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 关注作者。自关注和重复关注静默忽略，统一跳回作者主页
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	if _, _, err := h.svc.Follow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}

// Unfollow 取关，没关注过也是跳回主页
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if _, _, err := h.svc.Unfollow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}
