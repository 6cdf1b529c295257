package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout — формат календарной даты в JSON (без времени и часового пояса).
const Layout = "2006-01-02"

// Date представляет календарную дату без компонента времени.
//
// Тип используется для полей "дата рождения" и "дата релиза": в JSON они
// сериализуются строкой вида "1967-03-25", внутренне хранятся как time.Time
// с обнулённым временем в UTC.
type Date struct {
	t time.Time
}

// New создаёт дату из года, месяца и дня.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime обрезает time.Time до календарной даты.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today возвращает сегодняшнюю дату (UTC).
func Today() Date {
	return FromTime(time.Now().UTC())
}

// Parse разбирает строку формата "2006-01-02".
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("некорректная дата %q: %w", s, err)
	}
	return FromTime(t), nil
}

// IsZero сообщает, что дата не была задана.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before сообщает, что дата d раньше other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After сообщает, что дата d позже other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal сообщает, что даты совпадают.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String возвращает дату в формате "2006-01-02".
func (d Date) String() string {
	return d.t.Format(Layout)
}

// MarshalJSON сериализует дату строкой "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(Layout) + `"`), nil
}

// UnmarshalJSON разбирает дату из строки "2006-01-02".
// null и пустая строка дают нулевую дату (поле не задано).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
