package film

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/handler/response"
	filmuc "filmorate/internal/usecase/film"
)

// defaultPopularCount — количество фильмов в выдаче /films/popular, когда
// параметр count не указан.
const defaultPopularCount = "10"

// Handler обрабатывает HTTP-запросы, связанные с фильмами и лайками.
type Handler struct {
	films filmuc.Service
}

// NewHandler создаёт новый Handler фильмов.
func NewHandler(films filmuc.Service) *Handler {
	return &Handler{films: films}
}

// pathID извлекает positive-int64 параметр пути. Некорректное значение
// отклоняется с 400 до обращения к сервисному слою.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid_id",
			fmt.Sprintf("параметр %s должен быть положительным целым числом", name), nil)
		return 0, false
	}
	return id, true
}

// Create добавляет новый фильм.
// POST /films
func (h *Handler) Create(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	created, err := h.films.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFilmResponse(created))
}

// GetByID возвращает фильм по идентификатору.
// GET /films/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	film, err := h.films.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponse(film))
}

// Update частично обновляет фильм; тело несёт ID.
// PUT /films
func (h *Handler) Update(c *gin.Context) {
	var req FilmUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	updated, err := h.films.Update(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponse(updated))
}

// Delete удаляет фильм и возвращает удалённую сущность.
// DELETE /films/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.films.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponse(removed))
}

// List возвращает все фильмы по возрастанию ID.
// GET /films
func (h *Handler) List(c *gin.Context) {
	films, err := h.films.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponses(films))
}

// AddLike добавляет фильму лайк пользователя.
// PUT /films/:id/like/:userId
func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	film, err := h.films.AddLike(c.Request.Context(), filmID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponse(film))
}

// RemoveLike удаляет лайк пользователя у фильма.
// DELETE /films/:id/like/:userId
func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	film, err := h.films.RemoveLike(c.Request.Context(), filmID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponse(film))
}

// Popular возвращает самые популярные фильмы.
// GET /films/popular?count=N (по умолчанию 10)
func (h *Handler) Popular(c *gin.Context) {
	raw := c.DefaultQuery("count", defaultPopularCount)
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_count",
			"параметр count должен быть целым числом", nil)
		return
	}

	popular, err := h.films.MostPopular(c.Request.Context(), count)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFilmResponses(popular))
}
