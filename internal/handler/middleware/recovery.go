package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmorate/pkg/logger"
)

// Recovery перехватывает паники обработчиков и возвращает клиенту 500
// в едином формате ошибки, не роняя процесс.
func Recovery(lg logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		lg.Error("паника перехвачена", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(ContextRequestIDKey),
			"panic":      recovered,
		})

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "internal_error",
				"message": "Внутренняя ошибка сервера",
			},
		})
		c.Abort()
	})
}
