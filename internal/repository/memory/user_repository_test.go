package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "filmorate/internal/domain/user"
	repo "filmorate/internal/repository/interfaces"
	"filmorate/pkg/date"
)

func newTestUser(email, login string) *domain.User {
	return &domain.User{
		Email:    email,
		Login:    login,
		Name:     login,
		Birthday: date.New(1990, time.March, 25),
	}
}

func TestUserRepository_Create_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	first, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	_, err = r.Create(ctx, newTestUser("one@example.com", "two"))
	require.ErrorIs(t, err, repo.ErrValidation)

	// Неудачное добавление не оставляет следов.
	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUserRepository_Create_Nil(t *testing.T) {
	r := NewUserRepository()

	_, err := r.Create(context.Background(), nil)
	require.ErrorIs(t, err, repo.ErrValidation)
}

func TestUserRepository_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	created, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)

	// Пустые поля не затирают хранимые значения.
	updated, err := r.Update(ctx, &domain.User{ID: created.ID, Login: "renamed"})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Login)
	require.Equal(t, "one@example.com", updated.Email)
	require.Equal(t, "one", updated.Name)

	// Логин с пробелом не проходит предикат и игнорируется.
	updated, err = r.Update(ctx, &domain.User{ID: created.ID, Login: "bad login"})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Login)

	// Дата рождения в будущем не проходит предикат и игнорируется.
	future := date.FromTime(time.Now().UTC().AddDate(1, 0, 0))
	updated, err = r.Update(ctx, &domain.User{ID: created.ID, Birthday: future})
	require.NoError(t, err)
	require.Equal(t, date.New(1990, time.March, 25), updated.Birthday)
}

func TestUserRepository_Update_EmailConflict(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	first, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newTestUser("two@example.com", "two"))
	require.NoError(t, err)

	_, err = r.Update(ctx, &domain.User{ID: first.ID, Email: "two@example.com"})
	require.ErrorIs(t, err, repo.ErrValidation)

	// Оба пользователя остались без изменений.
	got, err := r.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "one@example.com", got.Email)
}

func TestUserRepository_Update_EmailReindexed(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	first, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)

	_, err = r.Update(ctx, &domain.User{ID: first.ID, Email: "new@example.com"})
	require.NoError(t, err)

	// Прежний E-mail освобождён, новый занят.
	_, err = r.Create(ctx, newTestUser("one@example.com", "other"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newTestUser("new@example.com", "third"))
	require.ErrorIs(t, err, repo.ErrValidation)
}

func TestUserRepository_Update_SameEmailNoConflict(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	created, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)

	// Повторная отправка собственного E-mail — не конфликт.
	updated, err := r.Update(ctx, &domain.User{ID: created.ID, Email: "one@example.com", Name: "New Name"})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
}

func TestUserRepository_Delete_FreesEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	created, err := r.Create(ctx, newTestUser("one@example.com", "one"))
	require.NoError(t, err)

	removed, err := r.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, removed.ID)

	// Освободившийся E-mail можно использовать снова; ID не переиспользуется.
	again, err := r.Create(ctx, newTestUser("one@example.com", "again"))
	require.NoError(t, err)
	require.Equal(t, int64(2), again.ID)
}

func TestUserRepository_LinkFriends_Symmetric(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	a, err := r.Create(ctx, newTestUser("a@example.com", "a"))
	require.NoError(t, err)
	b, err := r.Create(ctx, newTestUser("b@example.com", "b"))
	require.NoError(t, err)

	friend, err := r.LinkFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, friend.ID)
	require.True(t, a.HasFriend(b.ID))
	require.True(t, b.HasFriend(a.ID))

	// Повторное добавление идемпотентно.
	_, err = r.LinkFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, a.FriendIDs(), 1)

	_, err = r.UnlinkFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.False(t, a.HasFriend(b.ID))
	require.False(t, b.HasFriend(a.ID))

	// Разрыв отсутствующей связи — no-op.
	_, err = r.UnlinkFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
}

func TestUserRepository_LinkFriends_NotFound(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	a, err := r.Create(ctx, newTestUser("a@example.com", "a"))
	require.NoError(t, err)

	_, err = r.LinkFriends(ctx, a.ID, 99)
	require.ErrorIs(t, err, repo.ErrNotFound)
	require.Empty(t, a.FriendIDs())
}
