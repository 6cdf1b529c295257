package user

import (
	"context"
	"fmt"

	domain "filmorate/internal/domain/user"
	repo "filmorate/internal/repository/interfaces"
)

// Service описывает сервис социального графа: CRUD пользователей и
// поддержание симметричных связей дружбы.
//
// Сервис никогда не обходит своё хранилище; множества друзей изменяются
// только здесь и всегда парно, поэтому симметрия A ∈ друзья(B) ⇔
// B ∈ друзья(A) выполняется по построению.
type Service interface {
	// Create валидирует и сохраняет нового пользователя. Пустое имя
	// заменяется логином. Возвращает ErrValidation при некорректных полях
	// или занятом E-mail.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Update выполняет частичное обновление пользователя: пустые поля
	// остаются без изменений, пустое имя не затирает сохранённое.
	Update(ctx context.Context, updated *domain.User) (*domain.User, error)

	// GetByID возвращает пользователя по идентификатору.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Delete удаляет пользователя и возвращает удалённую сущность.
	Delete(ctx context.Context, id int64) (*domain.User, error)

	// List возвращает всех пользователей по возрастанию ID.
	List(ctx context.Context) ([]*domain.User, error)

	// AddFriend взаимно связывает двух пользователей и возвращает
	// добавленного друга. Возвращает ErrValidation при совпадающих ID.
	AddFriend(ctx context.Context, userID, friendID int64) (*domain.User, error)

	// RemoveFriend взаимно разрывает связь и возвращает удалённого друга.
	// Отсутствующая связь — no-op.
	RemoveFriend(ctx context.Context, userID, friendID int64) (*domain.User, error)

	// Friends возвращает друзей пользователя. Если ID из множества друзей
	// больше не разрешается (друг удалён), возвращается ErrNotFound.
	Friends(ctx context.Context, userID int64) ([]*domain.User, error)

	// MutualFriends возвращает пересечение множеств друзей двух
	// пользователей. Возвращает ErrValidation при совпадающих ID.
	MutualFriends(ctx context.Context, userID, otherID int64) ([]*domain.User, error)
}

type service struct {
	users repo.UserRepository
}

// NewService создаёт сервис социального графа поверх хранилища пользователей.
func NewService(users repo.UserRepository) Service {
	return &service{users: users}
}

// Create валидирует и сохраняет нового пользователя.
func (s *service) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("запрос на добавление пользователя поступил с пустым телом: %w", repo.ErrValidation)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err, repo.ErrValidation)
	}
	if user.Name == "" {
		user.Name = user.Login
	}
	return s.users.Create(ctx, user)
}

// Update делегирует частичное обновление хранилищу. Проверка конфликта
// E-mail и правила слияния полей выполняются на уровне репозитория.
func (s *service) Update(ctx context.Context, updated *domain.User) (*domain.User, error) {
	return s.users.Update(ctx, updated)
}

// GetByID возвращает пользователя по ID.
func (s *service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Delete удаляет пользователя. Удаление не каскадно: ID может оставаться
// в чужих множествах друзей и лайков до повторного разрешения.
func (s *service) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.Delete(ctx, id)
}

// List возвращает всех пользователей.
func (s *service) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// AddFriend взаимно связывает двух пользователей.
func (s *service) AddFriend(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	if userID == friendID {
		return nil, fmt.Errorf("ID=%d пользователя и ID=%d друга для добавления совпадают: %w",
			userID, friendID, repo.ErrValidation)
	}
	return s.users.LinkFriends(ctx, userID, friendID)
}

// RemoveFriend взаимно разрывает связь двух пользователей.
func (s *service) RemoveFriend(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	if userID == friendID {
		return nil, fmt.Errorf("ID=%d пользователя и ID=%d друга для удаления совпадают: %w",
			userID, friendID, repo.ErrValidation)
	}
	return s.users.UnlinkFriends(ctx, userID, friendID)
}

// Friends возвращает список друзей пользователя.
func (s *service) Friends(ctx context.Context, userID int64) ([]*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.FriendIDs())
}

// MutualFriends возвращает общих друзей двух пользователей.
func (s *service) MutualFriends(ctx context.Context, userID, otherID int64) ([]*domain.User, error) {
	if userID == otherID {
		return nil, fmt.Errorf("ID обоих пользователей совпадают: %w", repo.ErrValidation)
	}
	first, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	second, err := s.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, first.MutualFriendIDs(second))
}

// resolve превращает список ID в список сущностей, пропуская каждый ID через
// хранилище. Неразрешимый ID (удалённый пользователь) даёт ErrNotFound.
func (s *service) resolve(ctx context.Context, ids []int64) ([]*domain.User, error) {
	friends := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		friend, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}
	return friends, nil
}
