package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/handler/response"
	useruc "filmorate/internal/usecase/user"
)

// Handler обрабатывает HTTP-запросы, связанные с пользователями и дружбой.
type Handler struct {
	users useruc.Service
}

// NewHandler создаёт новый Handler пользователей.
func NewHandler(users useruc.Service) *Handler {
	return &Handler{users: users}
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

// Create добавляет нового пользователя.
// POST /users
func (h *Handler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	created, err := h.users.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(created))
}

// GetByID возвращает пользователя по идентификатору.
// GET /users/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Update частично обновляет пользователя; тело несёт ID.
// PUT /users
func (h *Handler) Update(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
		return
	}

	updated, err := h.users.Update(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete удаляет пользователя и возвращает удалённую сущность.
// DELETE /users/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(removed))
}

// List возвращает всех пользователей по возрастанию ID.
// GET /users
func (h *Handler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

// AddFriend взаимно связывает двух пользователей и возвращает друга.
// PUT /users/:id/friends/:friendId
func (h *Handler) AddFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	friend, err := h.users.AddFriend(c.Request.Context(), userID, friendID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(friend))
}

// RemoveFriend взаимно разрывает связь и возвращает друга.
// DELETE /users/:id/friends/:friendId
func (h *Handler) RemoveFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	friend, err := h.users.RemoveFriend(c.Request.Context(), userID, friendID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(friend))
}

// Friends возвращает список друзей пользователя.
// GET /users/:id/friends
func (h *Handler) Friends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	friends, err := h.users.Friends(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(friends))
}

// MutualFriends возвращает общих друзей двух пользователей.
// GET /users/:id/friends/common/:otherId
func (h *Handler) MutualFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	mutual, err := h.users.MutualFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(mutual))
}
