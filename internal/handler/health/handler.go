package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает health check запросы.
type Handler struct {
	appEnv string
}

// NewHandler создает новый экземпляр health handler.
func NewHandler(appEnv string) *Handler {
	return &Handler{appEnv: appEnv}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env,omitempty"`
	Message string `json:"message,omitempty"`
}

// Health проверяет работоспособность сервера. Состояние сервиса целиком
// in-memory, поэтому достаточно самого факта ответа процесса.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Env:     h.appEnv,
		Message: "Сервер работает",
	})
}
