package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID — заголовок, в котором клиент может передать, а сервер
// всегда возвращает идентификатор запроса.
const HeaderRequestID = "X-Request-ID"

// ContextRequestIDKey — ключ, под которым идентификатор запроса лежит в
// контексте gin.
const ContextRequestIDKey = "request_id"

// RequestID назначает каждому запросу идентификатор: берёт значение из
// заголовка X-Request-ID, если клиент его прислал, иначе генерирует новый.
// Идентификатор кладётся в контекст и дублируется в ответ, чтобы по нему
// можно было сопоставить записи лога с конкретным запросом.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
