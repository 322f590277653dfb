package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc       *service.PostService
	uploadDir string
}

func NewPostHandler(svc *service.PostService, uploadDir string) *PostHandler {
	return &PostHandler{svc: svc, uploadDir: uploadDir}
}

// Detail 帖子详情：帖子、评论、点赞数，登录访客附带点赞状态
func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Detail(c.Request.Context(), middleware.UserID(c), postID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create 发帖，成功后跳到作者主页
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	in, err := h.bindInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if _, err := h.svc.Create(userID, in); err != nil {
		fail(c, err)
		return
	}

	username, _ := c.Get(middleware.ContextUsernameKey)
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%v/", username))
}

// Edit 改帖。非作者不报错，302 回详情页
func (h *PostHandler) Edit(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if _, err := h.svc.Edit(middleware.UserID(c), postID, in); err != nil {
		if errors.Is(err, pkg.ErrNotOwner) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
			return
		}
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}

// Delete 删帖，级联带走评论和点赞。非作者 302 回详情页
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	post, err := h.svc.Delete(middleware.UserID(c), postID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotOwner) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
			return
		}
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", post.Author.Username))
}

// bindInput 表单字段：text、group_id（可选）、tags（逗号分隔）、image（可选文件）
func (h *PostHandler) bindInput(c *gin.Context) (service.PostInput, error) {
	in := service.PostInput{Text: c.PostForm("text")}

	if v := c.PostForm("group_id"); v != "" {
		groupID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return in, errors.New("invalid group_id")
		}
		in.GroupID = &groupID
	}

	if v := strings.TrimSpace(c.PostForm("tags")); v != "" {
		for _, label := range strings.Split(v, ",") {
			if label = strings.TrimSpace(label); label != "" {
				in.Tags = append(in.Tags, label)
			}
		}
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := pkg.SaveUpload(fh, h.uploadDir)
		if err != nil {
			return in, err
		}
		in.Image = url
	}
	return in, nil
}
