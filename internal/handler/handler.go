package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Vega_Blog/internal/pkg"

	"github.com/gin-gonic/gin"
)

// fail 统一错误出口：404 只给 NotFound，其余按参数错误处理
func fail(c *gin.Context, err error) {
	if errors.Is(err, pkg.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
}

// pageParam 页码参数，缺省或非法都算第 1 页，越界由分页器钳制
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return 0, false
	}
	return id, true
}
