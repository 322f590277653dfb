package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestInternalRoutesRequireLogin 运维接口匿名访问一律 302 到登录页，
// handler 不会被触达
func TestInternalRoutesRequireLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := InitRouter(&Handlers{UploadDir: t.TempDir()})

	paths := []string{
		"/internal/cache/clear",
		"/internal/groups/",
		"/internal/groups/go/delete",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Contains(t, w.Header().Get("Location"), "/auth/login/?next=", path)
	}
}

// TestWriteRoutesRequireLogin 普通写接口的登录门槛还在
func TestWriteRoutesRequireLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := InitRouter(&Handlers{UploadDir: t.TempDir()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=%2Fcreate%2F", w.Header().Get("Location"))
}
