package user

import (
	domain "filmorate/internal/domain/user"
	"filmorate/pkg/date"
)

// UserRequest описывает тело запроса создания пользователя (POST /users).
type UserRequest struct {
	Email    string    `json:"email" binding:"required,email"`
	Login    string    `json:"login" binding:"required"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
}

// UserUpdateRequest описывает тело запроса обновления (PUT /users).
// Все поля, кроме ID, опциональны: пустое поле оставляет хранимое значение
// без изменений.
type UserUpdateRequest struct {
	ID       int64     `json:"id" binding:"required,gt=0"`
	Email    string    `json:"email" binding:"omitempty,email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
}

// UserResponse описывает пользователя в ответах API.
type UserResponse struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
	Friends  []int64   `json:"friends"`
}

// toDomain маппит тело запроса создания в доменную модель.
func (r *UserRequest) toDomain() *domain.User {
	return &domain.User{
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: r.Birthday,
	}
}

// toDomain маппит тело запроса обновления в доменную модель с заполненными
// только переданными полями.
func (r *UserUpdateRequest) toDomain() *domain.User {
	return &domain.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: r.Birthday,
	}
}

// toUserResponse маппит доменную модель в DTO.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
		Friends:  u.FriendIDs(),
	}
}

// toUserResponses маппит список доменных моделей в список DTO.
func toUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
