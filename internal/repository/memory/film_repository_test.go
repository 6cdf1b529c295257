package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "filmorate/internal/domain/film"
	repo "filmorate/internal/repository/interfaces"
	"filmorate/pkg/date"
)

func newTestFilm(name string) *domain.Film {
	return &domain.Film{
		Name:        name,
		Description: "описание",
		ReleaseDate: date.New(1999, time.October, 14),
		Duration:    136,
	}
}

func TestFilmRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewFilmRepository()

	created, err := r.Create(ctx, newTestFilm("Матрица"))
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = r.GetByID(ctx, 99)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestFilmRepository_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	r := NewFilmRepository()

	created, err := r.Create(ctx, newTestFilm("Матрица"))
	require.NoError(t, err)

	// Меняется только название; остальные поля остаются прежними.
	updated, err := r.Update(ctx, &domain.Film{ID: created.ID, Name: "Матрица: Перезагрузка"})
	require.NoError(t, err)
	require.Equal(t, "Матрица: Перезагрузка", updated.Name)
	require.Equal(t, "описание", updated.Description)
	require.Equal(t, int64(136), updated.Duration)

	// Неположительная длительность игнорируется.
	updated, err = r.Update(ctx, &domain.Film{ID: created.ID, Duration: -10})
	require.NoError(t, err)
	require.Equal(t, int64(136), updated.Duration)
}

func TestFilmRepository_Update_ReleaseDateFloorSilentlyKept(t *testing.T) {
	ctx := context.Background()
	r := NewFilmRepository()

	created, err := r.Create(ctx, newTestFilm("Матрица"))
	require.NoError(t, err)
	stored := created.ReleaseDate

	// Дата раньше 28 декабря 1895 года молча игнорируется, вызов успешен.
	updated, err := r.Update(ctx, &domain.Film{ID: created.ID, ReleaseDate: date.New(1895, time.December, 27)})
	require.NoError(t, err)
	require.Equal(t, stored, updated.ReleaseDate)

	// Сама дата рождения кино при обновлении тоже не применяется
	// (проверка строго «позже»); допустимая дата позже неё применяется.
	updated, err = r.Update(ctx, &domain.Film{ID: created.ID, ReleaseDate: domain.CinemaBirthDate})
	require.NoError(t, err)
	require.Equal(t, stored, updated.ReleaseDate)

	updated, err = r.Update(ctx, &domain.Film{ID: created.ID, ReleaseDate: date.New(2003, time.May, 15)})
	require.NoError(t, err)
	require.Equal(t, date.New(2003, time.May, 15), updated.ReleaseDate)
}

func TestFilmRepository_Update_LongDescriptionIgnored(t *testing.T) {
	ctx := context.Background()
	r := NewFilmRepository()

	created, err := r.Create(ctx, newTestFilm("Матрица"))
	require.NoError(t, err)

	long := make([]rune, domain.MaxDescriptionLen+1)
	for i := range long {
		long[i] = 'а'
	}
	updated, err := r.Update(ctx, &domain.Film{ID: created.ID, Description: string(long)})
	require.NoError(t, err)
	require.Equal(t, "описание", updated.Description)
}

func TestFilmRepository_Likes_Idempotent(t *testing.T) {
	ctx := context.Background()
	r := NewFilmRepository()

	created, err := r.Create(ctx, newTestFilm("Матрица"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = r.AddLike(ctx, created.ID, 7)
		require.NoError(t, err)
	}
	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.LikeCount())

	_, err = r.RemoveLike(ctx, created.ID, 7)
	require.NoError(t, err)
	require.Equal(t, 0, got.LikeCount())

	// Удаление отсутствующего лайка — no-op.
	_, err = r.RemoveLike(ctx, created.ID, 7)
	require.NoError(t, err)

	_, err = r.AddLike(ctx, 99, 7)
	require.ErrorIs(t, err, repo.ErrNotFound)
}
