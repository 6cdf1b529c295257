package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"filmorate/internal/config"
	filmhandler "filmorate/internal/handler/film"
	"filmorate/internal/handler/health"
	"filmorate/internal/handler/middleware"
	userhandler "filmorate/internal/handler/user"
	"filmorate/internal/repository/memory"
	filmuc "filmorate/internal/usecase/film"
	useruc "filmorate/internal/usecase/user"
	"filmorate/pkg/logger"
)

// Server представляет HTTP сервер приложения.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	log        logger.Logger

	userHandler *userhandler.Handler
	filmHandler *filmhandler.Handler
}

// NewServer создает новый экземпляр сервера и собирает граф зависимостей:
// in-memory репозитории -> сервисы -> handler'ы. Состояние живёт только
// в течение жизни процесса.
func NewServer(cfg *config.Config) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		cfg:    cfg,
		log:    logger.Default(),
	}

	// Инициализируем зависимости доменов пользователей и фильмов один раз.
	// Сервис фильмов зависит от сервиса пользователей: лайк может поставить
	// только существующий пользователь.
	userRepo := memory.NewUserRepository()
	filmRepo := memory.NewFilmRepository()
	userService := useruc.NewService(userRepo)
	filmService := filmuc.NewService(filmRepo, userService)
	s.userHandler = userhandler.NewHandler(userService)
	s.filmHandler = filmhandler.NewHandler(filmService)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера.
func (s *Server) setupMiddleware() {
	// Recovery middleware - должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery(s.log))

	// RequestID middleware - идентификатор запроса для сопоставления логов
	s.router.Use(middleware.RequestID())

	// Logger middleware - логирование всех запросов
	s.router.Use(middleware.Logger())

	// CORS middleware - настройка CORS
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения.
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupUserRoutes()
	s.setupFilmRoutes()
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	healthHandler := health.NewHandler(s.cfg.AppEnv)
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
}

// setupUserRoutes настраивает эндпоинты пользователей и дружбы.
func (s *Server) setupUserRoutes() {
	users := s.router.Group("/users")
	{
		// POST /users — добавить нового пользователя.
		users.POST("", s.userHandler.Create)
		// GET /users — список всех пользователей.
		users.GET("", s.userHandler.List)
		// PUT /users — частичное обновление пользователя (ID в теле).
		users.PUT("", s.userHandler.Update)
		// GET /users/:id — получить пользователя по ID.
		users.GET("/:id", s.userHandler.GetByID)
		// DELETE /users/:id — удалить пользователя.
		users.DELETE("/:id", s.userHandler.Delete)
		// PUT /users/:id/friends/:friendId — взаимно добавить в друзья.
		users.PUT("/:id/friends/:friendId", s.userHandler.AddFriend)
		// DELETE /users/:id/friends/:friendId — взаимно удалить из друзей.
		users.DELETE("/:id/friends/:friendId", s.userHandler.RemoveFriend)
		// GET /users/:id/friends — список друзей пользователя.
		users.GET("/:id/friends", s.userHandler.Friends)
		// GET /users/:id/friends/common/:otherId — общие друзья двух пользователей.
		users.GET("/:id/friends/common/:otherId", s.userHandler.MutualFriends)
	}
}

// setupFilmRoutes настраивает эндпоинты фильмов, лайков и рейтинга.
func (s *Server) setupFilmRoutes() {
	films := s.router.Group("/films")
	{
		// POST /films — добавить новый фильм.
		films.POST("", s.filmHandler.Create)
		// GET /films — список всех фильмов.
		films.GET("", s.filmHandler.List)
		// PUT /films — частичное обновление фильма (ID в теле).
		films.PUT("", s.filmHandler.Update)
		// GET /films/popular?count=N — самые популярные фильмы.
		films.GET("/popular", s.filmHandler.Popular)
		// GET /films/:id — получить фильм по ID.
		films.GET("/:id", s.filmHandler.GetByID)
		// DELETE /films/:id — удалить фильм.
		films.DELETE("/:id", s.filmHandler.Delete)
		// PUT /films/:id/like/:userId — поставить лайк фильму.
		films.PUT("/:id/like/:userId", s.filmHandler.AddLike)
		// DELETE /films/:id/like/:userId — удалить лайк у фильма.
		films.DELETE("/:id/like/:userId", s.filmHandler.RemoveLike)
	}
}

// Start запускает HTTP сервер с graceful shutdown.
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		log.Printf("Ошибка запуска сервера: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	// Создаем контекст с таймаутом для graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования).
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
