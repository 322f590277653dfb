package handler

import (
	"errors"
	"fmt"
	"net/http"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add 发评论，成功与否都回到详情页
func (h *CommentHandler) Add(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Add(middleware.UserID(c), postID, c.PostForm("text")); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}

// Delete 删评论。非作者静默跳回详情页，不暴露错误
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	postID, err := h.svc.Delete(middleware.UserID(c), commentID)
	if err != nil && !errors.Is(err, pkg.ErrNotOwner) {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}
