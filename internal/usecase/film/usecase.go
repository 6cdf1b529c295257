package film

import (
	"context"
	"errors"
	"fmt"
	"sort"

	domain "filmorate/internal/domain/film"
	repo "filmorate/internal/repository/interfaces"
	useruc "filmorate/internal/usecase/user"
)

// Service описывает сервис рейтинга фильмов: CRUD фильмов, лайки и выборку
// самых популярных. Существование пользователя проверяется через сервис
// социального графа перед любой операцией с лайком.
type Service interface {
	// Create валидирует и сохраняет новый фильм. Дата релиза раньше
	// 28 декабря 1895 года отклоняется с ErrValidation.
	Create(ctx context.Context, film *domain.Film) (*domain.Film, error)

	// Update выполняет частичное обновление фильма; пустые поля остаются
	// без изменений, дата релиза вне допустимого диапазона молча
	// игнорируется.
	Update(ctx context.Context, updated *domain.Film) (*domain.Film, error)

	// GetByID возвращает фильм по идентификатору.
	GetByID(ctx context.Context, id int64) (*domain.Film, error)

	// Delete удаляет фильм и возвращает удалённую сущность.
	Delete(ctx context.Context, id int64) (*domain.Film, error)

	// List возвращает все фильмы по возрастанию ID.
	List(ctx context.Context) ([]*domain.Film, error)

	// AddLike добавляет фильму лайк пользователя. Повторный лайк того же
	// пользователя не имеет эффекта.
	AddLike(ctx context.Context, filmID, userID int64) (*domain.Film, error)

	// RemoveLike удаляет лайк пользователя; отсутствующий лайк — no-op.
	RemoveLike(ctx context.Context, filmID, userID int64) (*domain.Film, error)

	// MostPopular возвращает не более limit фильмов, имеющих хотя бы один
	// лайк, по убыванию числа лайков; при равенстве — по возрастанию ID.
	// Возвращает ErrValidation при limit <= 0.
	MostPopular(ctx context.Context, limit int64) ([]*domain.Film, error)
}

type service struct {
	films repo.FilmRepository
	users useruc.Service
}

// NewService создаёт сервис рейтинга фильмов поверх хранилища фильмов и
// сервиса социального графа.
func NewService(films repo.FilmRepository, users useruc.Service) Service {
	return &service{films: films, users: users}
}

// Create валидирует и сохраняет новый фильм.
func (s *service) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	if film == nil {
		return nil, fmt.Errorf("запрос на добавление фильма поступил с пустым телом: %w", repo.ErrValidation)
	}
	if err := film.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err, repo.ErrValidation)
	}
	return s.films.Create(ctx, film)
}

// Update делегирует частичное обновление хранилищу.
func (s *service) Update(ctx context.Context, updated *domain.Film) (*domain.Film, error) {
	return s.films.Update(ctx, updated)
}

// GetByID возвращает фильм по ID.
func (s *service) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	return s.films.GetByID(ctx, id)
}

// Delete удаляет фильм.
func (s *service) Delete(ctx context.Context, id int64) (*domain.Film, error) {
	return s.films.Delete(ctx, id)
}

// List возвращает все фильмы.
func (s *service) List(ctx context.Context) ([]*domain.Film, error) {
	return s.films.List(ctx)
}

// AddLike добавляет фильму лайк существующего пользователя.
func (s *service) AddLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("пользователь с ID: %d не найден, невозможно поставить лайк фильму: %w",
				userID, repo.ErrNotFound)
		}
		return nil, err
	}
	return s.films.AddLike(ctx, filmID, userID)
}

// RemoveLike удаляет лайк пользователя у фильма.
func (s *service) RemoveLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("пользователь с ID: %d не найден, невозможно удалить лайк у фильма: %w",
				userID, repo.ErrNotFound)
		}
		return nil, err
	}
	return s.films.RemoveLike(ctx, filmID, userID)
}

// MostPopular возвращает самые популярные фильмы.
//
// Участвуют только фильмы хотя бы с одним лайком: фильм без лайков не
// попадает в выдачу, даже если limit больше числа кандидатов. Полная
// устойчивая сортировка гарантирует, что фильмы с одинаковым числом лайков
// не вытесняют друг друга — каждый кандидат представлен ровно один раз.
func (s *service) MostPopular(ctx context.Context, limit int64) ([]*domain.Film, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("count должен быть больше 0: %w", repo.ErrValidation)
	}

	all, err := s.films.List(ctx)
	if err != nil {
		return nil, err
	}

	popular := make([]*domain.Film, 0, len(all))
	for _, f := range all {
		if f.LikeCount() > 0 {
			popular = append(popular, f)
		}
	}
	sort.SliceStable(popular, func(i, j int) bool {
		if popular[i].LikeCount() != popular[j].LikeCount() {
			return popular[i].LikeCount() > popular[j].LikeCount()
		}
		return popular[i].ID < popular[j].ID
	})

	if int64(len(popular)) > limit {
		popular = popular[:limit]
	}
	return popular, nil
}
