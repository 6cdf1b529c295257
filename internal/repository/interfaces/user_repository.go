package interfaces

import (
	"context"

	domain "filmorate/internal/domain/user"
)

// UserRepository определяет контракт хранилища пользователей.
//
// Интерфейс оперирует доменной моделью User и не раскрывает деталей
// реализации (in-memory карта, индекс уникальности E-mail и т.п.).
type UserRepository interface {
	// Create сохраняет нового пользователя и назначает ему ID.
	// Возвращает ErrValidation, если пользователь nil или E-mail уже
	// используется другим хранимым пользователем.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID возвращает пользователя по идентификатору.
	// Возвращает ErrNotFound, если пользователь не найден.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Update выполняет частичное обновление: каждое поле заменяет хранимое
	// значение, только если отличается от текущего и проходит предикат
	// корректности поля; пустые поля остаются без изменений.
	// Возвращает ErrValidation при nil-пользователе, нулевом ID или
	// конфликте нового E-mail с другим пользователем; ErrNotFound, если
	// пользователь с таким ID отсутствует.
	Update(ctx context.Context, updated *domain.User) (*domain.User, error)

	// Delete удаляет пользователя и возвращает удалённую сущность.
	// Удаление не каскадно: ID может оставаться в чужих множествах друзей
	// и лайков, пока потребители не разрешат его заново.
	// Возвращает ErrNotFound, если пользователь не найден.
	Delete(ctx context.Context, id int64) (*domain.User, error)

	// List возвращает всех пользователей по возрастанию ID.
	List(ctx context.Context) ([]*domain.User, error)

	// LinkFriends взаимно добавляет пользователей в множества друзей друг
	// друга. Операция атомарна: наблюдатель видит либо обе стороны связи,
	// либо ни одной. Повторное добавление не имеет эффекта.
	// Возвращает добавленного друга; ErrNotFound, если любой из ID
	// не разрешается.
	LinkFriends(ctx context.Context, userID, friendID int64) (*domain.User, error)

	// UnlinkFriends взаимно удаляет пользователей из множеств друзей друг
	// друга. Отсутствующая связь — no-op. Возвращает удалённого друга;
	// ErrNotFound, если любой из ID не разрешается.
	UnlinkFriends(ctx context.Context, userID, friendID int64) (*domain.User, error)
}
