package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"Vega_Blog/internal/middleware"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

// localNext 续跳目标只认站内路径，拒绝外部地址和 // 开头的
// 协议相对地址，非法值一律落回首页
func localNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

type UserHandler struct {
	svc       *service.UserService
	uploadDir string
}

type signupReq struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type loginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func NewUserHandler(svc *service.UserService, uploadDir string) *UserHandler {
	return &UserHandler{svc: svc, uploadDir: uploadDir}
}

// Signup 注册后跳登录页，站内 next 带过去
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params", "errors": err.Error()})
		return
	}
	if _, err := h.svc.Register(req.Username, req.Email, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	target := middleware.LoginPath
	if next := localNext(c.Query("next")); next != "/" {
		target += "?next=" + url.QueryEscape(next)
	}
	c.Redirect(http.StatusFound, target)
}

// LoginPage 登录页占位：模板渲染在本服务之外，这里只回 next
func (h *UserHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "login required", "next": c.Query("next")})
}

// Login 登录成功写会话 cookie，然后继续去 next 指向的原始路径
func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	token, _, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(pkg.SessionTTL.Seconds()), "/", "", false, true)

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	c.Redirect(http.StatusFound, localNext(next))
}

// Logout 删 redis 里的 token 并清 cookie
func (h *UserHandler) Logout(c *gin.Context) {
	if userID := middleware.UserID(c); userID != 0 {
		_ = h.svc.Logout(userID)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Profile 当前用户的资料
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.svc.GetProfile(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile 改资料：bio、location、birth_date（2006-01-02）、photo 文件
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var birthDate *time.Time
	if v := c.PostForm("birth_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid birth_date"})
			return
		}
		birthDate = &t
	}

	photo := ""
	if fh, err := c.FormFile("photo"); err == nil {
		url, err := pkg.SaveUpload(fh, h.uploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		photo = url
	}

	profile, err := h.svc.UpdateProfile(
		middleware.UserID(c),
		c.PostForm("bio"),
		c.PostForm("location"),
		birthDate,
		photo,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
