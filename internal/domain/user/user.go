package user

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"filmorate/pkg/date"
)

// emailPattern — упрощённая проверка синтаксиса E-mail (наличие локальной
// части, @ и домена с точкой, без пробелов).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User представляет доменную модель пользователя сервиса.
//
// Важно: модель описывает бизнес-сущность и не зависит от деталей транспорта
// (HTTP) и формата хранения. Множество друзей симметрично по построению и
// изменяется только сервисом социального графа, всегда парно.
type User struct {
	ID       int64     // Уникальный идентификатор, назначается хранилищем
	Email    string    // E-mail (уникален среди всех хранимых пользователей)
	Login    string    // Логин (непустой, без пробельных символов)
	Name     string    // Отображаемое имя; при отсутствии равно логину
	Birthday date.Date // Дата рождения (не в будущем)

	friends map[int64]struct{} // Множество ID друзей
}

// Validate проверяет поля пользователя при создании.
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("E-mail не может быть пустым")
	}
	if !emailPattern.MatchString(u.Email) {
		return fmt.Errorf("указанный E-mail: %s не соответствует формату", u.Email)
	}
	if err := ValidLogin(u.Login); err != nil {
		return err
	}
	if u.Birthday.IsZero() {
		return fmt.Errorf("дата рождения не может быть пустой")
	}
	return ValidBirthday(u.Birthday)
}

// ValidEmail — предикат корректности E-mail для частичного обновления.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidLogin проверяет, что логин непустой и не содержит пробельных символов.
func ValidLogin(login string) error {
	if login == "" {
		return fmt.Errorf("логин не может быть пустым")
	}
	if strings.ContainsAny(login, " \t\n\r") {
		return fmt.Errorf("логин не должен содержать пробелы")
	}
	return nil
}

// ValidBirthday проверяет, что дата рождения не находится в будущем.
func ValidBirthday(birthday date.Date) error {
	if birthday.After(date.Today()) {
		return fmt.Errorf("дата рождения не может быть в будущем")
	}
	return nil
}

// EntityID возвращает идентификатор пользователя.
func (u *User) EntityID() int64 { return u.ID }

// SetEntityID назначает идентификатор пользователя.
func (u *User) SetEntityID(id int64) { u.ID = id }

// AddFriend добавляет ID в множество друзей. Повторное добавление не имеет
// эффекта.
func (u *User) AddFriend(id int64) {
	if u.friends == nil {
		u.friends = make(map[int64]struct{})
	}
	u.friends[id] = struct{}{}
}

// RemoveFriend удаляет ID из множества друзей. Отсутствующий ID игнорируется.
func (u *User) RemoveFriend(id int64) {
	delete(u.friends, id)
}

// HasFriend сообщает, входит ли ID в множество друзей.
func (u *User) HasFriend(id int64) bool {
	_, ok := u.friends[id]
	return ok
}

// FriendIDs возвращает ID друзей, отсортированные по возрастанию.
func (u *User) FriendIDs() []int64 {
	ids := make([]int64, 0, len(u.friends))
	for id := range u.friends {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MutualFriendIDs возвращает пересечение множеств друзей двух пользователей,
// отсортированное по возрастанию ID.
func (u *User) MutualFriendIDs(other *User) []int64 {
	ids := make([]int64, 0)
	for id := range u.friends {
		if other.HasFriend(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
