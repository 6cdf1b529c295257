package memory

import (
	"context"
	"fmt"
	"sync"

	domain "filmorate/internal/domain/user"
	repo "filmorate/internal/repository/interfaces"
)

// UserRepository — in-memory реализация repo.UserRepository.
//
// Поверх универсального Store репозиторий поддерживает вторичный индекс
// E-mail → ID, обеспечивающий уникальность E-mail среди всех хранимых
// пользователей без линейного перебора. Мьютекс репозитория сериализует
// Create/Update/Delete, поэтому индекс изменяется транзакционно с картой.
type UserRepository struct {
	mu      sync.Mutex
	store   *Store[*domain.User]
	byEmail map[string]int64
}

// NewUserRepository создаёт пустой репозиторий пользователей.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		store:   NewStore("пользователь", mergeUser),
		byEmail: make(map[string]int64),
	}
}

// mergeUser переносит в stored поля updated, которые отличаются от текущих
// и проходят предикаты корректности. Пустые поля остаются без изменений:
// так поддерживается частичное обновление без отдельного patch-формата.
func mergeUser(stored, updated *domain.User) {
	if updated.Email != "" && updated.Email != stored.Email && domain.ValidEmail(updated.Email) {
		stored.Email = updated.Email
	}
	if updated.Login != "" && updated.Login != stored.Login && domain.ValidLogin(updated.Login) == nil {
		stored.Login = updated.Login
	}
	if updated.Name != "" && updated.Name != stored.Name {
		stored.Name = updated.Name
	}
	if !updated.Birthday.IsZero() && !updated.Birthday.Equal(stored.Birthday) &&
		domain.ValidBirthday(updated.Birthday) == nil {
		stored.Birthday = updated.Birthday
	}
}

// Create сохраняет нового пользователя, предварительно проверив уникальность
// E-mail по вторичному индексу.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("запрос на добавление пользователя поступил с пустым телом: %w", repo.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, fmt.Errorf("указанный E-mail: %s уже используется: %w", user.Email, repo.ErrValidation)
	}

	created, err := r.store.Add(user)
	if err != nil {
		return nil, err
	}
	r.byEmail[created.Email] = created.ID
	return created, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.store.GetByID(id)
}

// Update выполняет частичное обновление пользователя. Смена E-mail проходит
// проверку на конфликт с другими пользователями до слияния полей.
func (r *UserRepository) Update(ctx context.Context, updated *domain.User) (*domain.User, error) {
	if updated == nil {
		return nil, fmt.Errorf("запрос на обновление пользователя поступил с пустым телом: %w", repo.ErrValidation)
	}
	if updated.ID == 0 {
		return nil, fmt.Errorf("ID пользователя должен быть указан: %w", repo.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.store.GetByID(updated.ID)
	if err != nil {
		return nil, err
	}
	oldEmail := stored.Email

	if updated.Email != "" && updated.Email != oldEmail {
		if otherID, ok := r.byEmail[updated.Email]; ok && otherID != updated.ID {
			return nil, fmt.Errorf("обновляемый E-mail: %s уже используется: %w", updated.Email, repo.ErrValidation)
		}
	}

	result, err := r.store.Update(updated)
	if err != nil {
		return nil, err
	}
	if result.Email != oldEmail {
		delete(r.byEmail, oldEmail)
		r.byEmail[result.Email] = result.ID
	}
	return result, nil
}

// Delete удаляет пользователя вместе с его записью в индексе E-mail.
func (r *UserRepository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	delete(r.byEmail, removed.Email)
	return removed, nil
}

// List возвращает всех пользователей по возрастанию ID.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.store.List(), nil
}

// LinkFriends взаимно добавляет пользователей в множества друзей друг друга
// под одной блокировкой хранилища.
func (r *UserRepository) LinkFriends(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	return r.store.MutatePair(userID, friendID, func(user, friend *domain.User) {
		user.AddFriend(friend.ID)
		friend.AddFriend(user.ID)
	})
}

// UnlinkFriends взаимно удаляет пользователей из множеств друзей друг друга.
func (r *UserRepository) UnlinkFriends(ctx context.Context, userID, friendID int64) (*domain.User, error) {
	return r.store.MutatePair(userID, friendID, func(user, friend *domain.User) {
		user.RemoveFriend(friend.ID)
		friend.RemoveFriend(user.ID)
	})
}
