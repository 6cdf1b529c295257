//go:build integration
// +build integration

package config

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appcfg "filmorate/internal/config"
	"filmorate/internal/server"
)

// NewTestRouter создает новый экземпляр gin.Engine для интеграционных тестов.
// Хранилище in-memory, поэтому каждый вызов даёт полностью изолированное
// чистое состояние без внешних зависимостей.
func NewTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &appcfg.Config{
		Server: appcfg.ServerConfig{Host: "localhost", Port: "8080"},
		CORS: appcfg.CORSConfig{
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			MaxAge:         12 * time.Hour,
		},
		AppEnv: "test",
	}

	srv := server.NewServer(cfg)
	return srv.GetRouter()
}
