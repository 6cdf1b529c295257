package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	repo "filmorate/internal/repository/interfaces"
)

// ErrorBody описывает стандартный формат ошибки API.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Error отправляет JSON-ответ с ошибкой в едином формате.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError отображает вид ошибки на HTTP-статус: ErrValidation — 400,
// ErrNotFound — 404, всё остальное — 500. Вызывающий код ветвится только
// по виду ошибки, текст сообщения не разбирается.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrValidation):
		Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, repo.ErrNotFound):
		Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		log.Printf("внутренняя ошибка: %s %s err=%v", c.Request.Method, c.Request.URL.Path, err)
		Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
	}
}
