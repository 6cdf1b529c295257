package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "filmorate/internal/domain/user"
	repo "filmorate/internal/repository/interfaces"
	"filmorate/internal/repository/memory"
	useruc "filmorate/internal/usecase/user"
	"filmorate/pkg/date"
)

func newService() useruc.Service {
	return useruc.NewService(memory.NewUserRepository())
}

func validUser(email, login string) *domain.User {
	return &domain.User{
		Email:    email,
		Login:    login,
		Birthday: date.New(1990, time.March, 25),
	}
}

func TestCreate_DefaultsNameToLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validUser("one@example.com", "one"))
	require.NoError(t, err)
	require.Equal(t, "one", created.Name)

	named := validUser("two@example.com", "two")
	named.Name = "Имя"
	created, err = svc.Create(ctx, named)
	require.NoError(t, err)
	require.Equal(t, "Имя", created.Name)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	cases := []struct {
		name string
		user *domain.User
	}{
		{"nil-пользователь", nil},
		{"пустой E-mail", &domain.User{Login: "l", Birthday: date.New(1990, time.March, 25)}},
		{"некорректный E-mail", &domain.User{Email: "bad email@example.com", Login: "l", Birthday: date.New(1990, time.March, 25)}},
		{"пустой логин", &domain.User{Email: "a@example.com", Birthday: date.New(1990, time.March, 25)}},
		{"логин с пробелом", &domain.User{Email: "a@example.com", Login: "bad login", Birthday: date.New(1990, time.March, 25)}},
		{"дата рождения в будущем", &domain.User{Email: "a@example.com", Login: "l", Birthday: date.FromTime(time.Now().UTC().AddDate(1, 0, 0))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.user)
			require.ErrorIs(t, err, repo.ErrValidation)
		})
	}
}

func TestUpdate_BlankNameDoesNotEraseStored(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	named := validUser("one@example.com", "one")
	named.Name = "Имя"
	created, err := svc.Create(ctx, named)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &domain.User{ID: created.ID, Login: "renamed"})
	require.NoError(t, err)
	require.Equal(t, "Имя", updated.Name)
	require.Equal(t, "renamed", updated.Login)
}

func TestAddFriend_SymmetryAndSelfRejection(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	a, err := svc.Create(ctx, validUser("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, validUser("b@example.com", "b"))
	require.NoError(t, err)

	friend, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, friend.ID)

	aFriends, err := svc.Friends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, aFriends, 1)
	require.Equal(t, b.ID, aFriends[0].ID)

	bFriends, err := svc.Friends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bFriends, 1)
	require.Equal(t, a.ID, bFriends[0].ID)

	_, err = svc.RemoveFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)

	aFriends, err = svc.Friends(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, aFriends)
	bFriends, err = svc.Friends(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, bFriends)

	// Дружба с самим собой запрещена.
	_, err = svc.AddFriend(ctx, b.ID, b.ID)
	require.ErrorIs(t, err, repo.ErrValidation)
	_, err = svc.RemoveFriend(ctx, b.ID, b.ID)
	require.ErrorIs(t, err, repo.ErrValidation)
}

func TestAddFriend_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	a, err := svc.Create(ctx, validUser("a@example.com", "a"))
	require.NoError(t, err)

	_, err = svc.AddFriend(ctx, a.ID, 99)
	require.ErrorIs(t, err, repo.ErrNotFound)
	_, err = svc.AddFriend(ctx, 99, a.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMutualFriends_Intersection(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	users := make([]*domain.User, 0, 5)
	logins := []string{"a", "b", "c", "d", "e"}
	for _, login := range logins {
		u, err := svc.Create(ctx, validUser(login+"@example.com", login))
		require.NoError(t, err)
		users = append(users, u)
	}
	a, b, c, d, e := users[0], users[1], users[2], users[3], users[4]

	// Друзья A: c, d. Друзья B: c, e. Пересечение: c.
	for _, friendID := range []int64{c.ID, d.ID} {
		_, err := svc.AddFriend(ctx, a.ID, friendID)
		require.NoError(t, err)
	}
	for _, friendID := range []int64{c.ID, e.ID} {
		_, err := svc.AddFriend(ctx, b.ID, friendID)
		require.NoError(t, err)
	}

	mutual, err := svc.MutualFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, mutual, 1)
	require.Equal(t, c.ID, mutual[0].ID)

	_, err = svc.MutualFriends(ctx, a.ID, a.ID)
	require.ErrorIs(t, err, repo.ErrValidation)
}

func TestFriends_DanglingFriendID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	a, err := svc.Create(ctx, validUser("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, validUser("b@example.com", "b"))
	require.NoError(t, err)

	_, err = svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)

	// Удаление не каскадно: ID остаётся в множестве друзей, но повторное
	// разрешение даёт ErrNotFound.
	_, err = svc.Delete(ctx, b.ID)
	require.NoError(t, err)

	_, err = svc.Friends(ctx, a.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}
