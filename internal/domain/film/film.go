package film

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"filmorate/pkg/date"
)

// MaxDescriptionLen — максимальная длина описания фильма в символах.
const MaxDescriptionLen = 200

// CinemaBirthDate — дата выхода первого фильма (28 декабря 1895 года).
// Дата релиза не может быть раньше неё.
var CinemaBirthDate = date.New(1895, time.December, 28)

// Film представляет доменную модель фильма.
//
// Множество поставивших лайк пользователей изменяется только сервисом
// рейтинга фильмов; повторный лайк одного пользователя не имеет эффекта.
type Film struct {
	ID          int64     // Уникальный идентификатор, назначается хранилищем
	Name        string    // Название (непустое)
	Description string    // Описание (не более MaxDescriptionLen символов)
	ReleaseDate date.Date // Дата релиза (не раньше CinemaBirthDate)
	Duration    int64     // Продолжительность в минутах (положительная)

	likedBy map[int64]struct{} // ID пользователей, поставивших лайк
}

// Validate проверяет поля фильма при создании.
func (f *Film) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("название не может быть пустым")
	}
	if !ValidDescription(f.Description) {
		return fmt.Errorf("максимальная длина описания — %d символов", MaxDescriptionLen)
	}
	if f.ReleaseDate.IsZero() {
		return fmt.Errorf("дата релиза не может быть пустой")
	}
	if f.ReleaseDate.Before(CinemaBirthDate) {
		return fmt.Errorf("дата релиза не может быть раньше 28 декабря 1895 года")
	}
	if f.Duration <= 0 {
		return fmt.Errorf("продолжительность фильма должна быть положительным числом")
	}
	return nil
}

// ValidDescription — предикат длины описания.
func ValidDescription(description string) bool {
	return utf8.RuneCountInString(description) <= MaxDescriptionLen
}

// EntityID возвращает идентификатор фильма.
func (f *Film) EntityID() int64 { return f.ID }

// SetEntityID назначает идентификатор фильма.
func (f *Film) SetEntityID(id int64) { f.ID = id }

// AddLike добавляет лайк пользователя. Повторный лайк не имеет эффекта.
func (f *Film) AddLike(userID int64) {
	if f.likedBy == nil {
		f.likedBy = make(map[int64]struct{})
	}
	f.likedBy[userID] = struct{}{}
}

// RemoveLike удаляет лайк пользователя. Отсутствующий лайк игнорируется.
func (f *Film) RemoveLike(userID int64) {
	delete(f.likedBy, userID)
}

// LikeCount возвращает количество лайков фильма.
func (f *Film) LikeCount() int {
	return len(f.likedBy)
}

// LikedBy возвращает ID поставивших лайк пользователей по возрастанию.
func (f *Film) LikedBy() []int64 {
	ids := make([]int64, 0, len(f.likedBy))
	for id := range f.likedBy {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
