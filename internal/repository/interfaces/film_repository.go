package interfaces

import (
	"context"

	domain "filmorate/internal/domain/film"
)

// FilmRepository определяет контракт хранилища фильмов.
type FilmRepository interface {
	// Create сохраняет новый фильм и назначает ему ID.
	// Возвращает ErrValidation, если фильм nil.
	Create(ctx context.Context, film *domain.Film) (*domain.Film, error)

	// GetByID возвращает фильм по идентификатору.
	// Возвращает ErrNotFound, если фильм не найден.
	GetByID(ctx context.Context, id int64) (*domain.Film, error)

	// Update выполняет частичное обновление: каждое поле заменяет хранимое
	// значение, только если отличается от текущего и проходит предикат
	// корректности поля; пустые поля остаются без изменений. Дата релиза
	// раньше 28 декабря 1895 года молча игнорируется — хранимое значение
	// сохраняется, вызов завершается успешно.
	// Возвращает ErrValidation при nil-фильме или нулевом ID; ErrNotFound,
	// если фильм с таким ID отсутствует.
	Update(ctx context.Context, updated *domain.Film) (*domain.Film, error)

	// Delete удаляет фильм и возвращает удалённую сущность.
	// Возвращает ErrNotFound, если фильм не найден.
	Delete(ctx context.Context, id int64) (*domain.Film, error)

	// List возвращает все фильмы по возрастанию ID.
	List(ctx context.Context) ([]*domain.Film, error)

	// AddLike добавляет лайк пользователя фильму под блокировкой хранилища.
	// Повторный лайк не имеет эффекта. Проверка существования пользователя
	// выполняется сервисным слоем до вызова.
	// Возвращает ErrNotFound, если фильм не найден.
	AddLike(ctx context.Context, filmID, userID int64) (*domain.Film, error)

	// RemoveLike удаляет лайк пользователя; отсутствующий лайк — no-op.
	// Возвращает ErrNotFound, если фильм не найден.
	RemoveLike(ctx context.Context, filmID, userID int64) (*domain.Film, error)
}
