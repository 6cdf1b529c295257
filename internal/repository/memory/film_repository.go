package memory

import (
	"context"

	domain "filmorate/internal/domain/film"
)

// FilmRepository — in-memory реализация repo.FilmRepository поверх
// универсального Store. Лайки изменяются только под блокировкой хранилища.
type FilmRepository struct {
	store *Store[*domain.Film]
}

// NewFilmRepository создаёт пустой репозиторий фильмов.
func NewFilmRepository() *FilmRepository {
	return &FilmRepository{store: NewStore("фильм", mergeFilm)}
}

// mergeFilm переносит в stored поля updated, которые отличаются от текущих
// и проходят предикаты корректности; пустые поля остаются без изменений.
//
// Дата релиза не раньше 28 декабря 1895 года применяется, иначе молча
// игнорируется — хранимое значение сохраняется, вызов успешен. Клиенты
// полагаются на это поведение; менять его на отказ нельзя без согласования
// с сопровождающими.
func mergeFilm(stored, updated *domain.Film) {
	if updated.Name != "" && updated.Name != stored.Name {
		stored.Name = updated.Name
	}
	if updated.Description != "" && updated.Description != stored.Description &&
		domain.ValidDescription(updated.Description) {
		stored.Description = updated.Description
	}
	if !updated.ReleaseDate.IsZero() && !updated.ReleaseDate.Equal(stored.ReleaseDate) &&
		updated.ReleaseDate.After(domain.CinemaBirthDate) {
		stored.ReleaseDate = updated.ReleaseDate
	}
	if updated.Duration > 0 && updated.Duration != stored.Duration {
		stored.Duration = updated.Duration
	}
}

// Create сохраняет новый фильм.
func (r *FilmRepository) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	return r.store.Add(film)
}

// GetByID возвращает фильм по идентификатору.
func (r *FilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	return r.store.GetByID(id)
}

// Update выполняет частичное обновление фильма.
func (r *FilmRepository) Update(ctx context.Context, updated *domain.Film) (*domain.Film, error) {
	return r.store.Update(updated)
}

// Delete удаляет фильм и возвращает удалённую сущность.
func (r *FilmRepository) Delete(ctx context.Context, id int64) (*domain.Film, error) {
	return r.store.Remove(id)
}

// List возвращает все фильмы по возрастанию ID.
func (r *FilmRepository) List(ctx context.Context) ([]*domain.Film, error) {
	return r.store.List(), nil
}

// AddLike добавляет лайк пользователя фильму. Повторный лайк — no-op.
func (r *FilmRepository) AddLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	return r.store.Mutate(filmID, func(f *domain.Film) {
		f.AddLike(userID)
	})
}

// RemoveLike удаляет лайк пользователя; отсутствующий лайк — no-op.
func (r *FilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	return r.store.Mutate(filmID, func(f *domain.Film) {
		f.RemoveLike(userID)
	})
}
