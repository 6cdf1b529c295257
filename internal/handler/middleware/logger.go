package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger логирует каждый HTTP-запрос: метод, путь, статус, время выполнения,
// адрес клиента и идентификатор запроса.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[%s] %s %d %v %s request_id=%s %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.GetString(ContextRequestIDKey),
			c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
