package handlers

import (
	"errors"
	"log"
	"mcaverse/internal/middleware"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 把 service 层错误映射成状态码；500 只返回通用提示
func respondError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input."})
	case errors.Is(err, services.ErrNoQuestions):
		c.JSON(http.StatusNotFound, gin.H{"error": "No questions available."})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		log.Printf("[%s %s] %s: %v", c.Request.Method, c.FullPath(), failMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// requireSelf 请求里的 userId 必须是当前登录用户
func requireSelf(c *gin.Context, userID string) bool {
	if userID == "" || userID != middleware.CurrentUID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	return true
}

// bindOrFail 绑定 JSON / 表单，失败返回 400
func bindOrFail(c *gin.Context, obj interface{}, msg string) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "details": err.Error()})
		return false
	}
	return true
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
