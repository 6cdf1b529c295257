package interfaces

import "errors"

// ErrNotFound возвращается, когда сущность с указанным ID отсутствует
// в хранилище на момент вызова.
var ErrNotFound = errors.New("сущность не найдена")

// ErrValidation возвращается, когда данные запроса нарушают бизнес-правило:
// пустое тело, отсутствующий ID при обновлении, дубликат E-mail, совпадающие
// ID при работе с друзьями, неположительный лимит рейтинга и т.п.
//
// Конкретные места оборачивают сентинел через fmt.Errorf("...: %w", ...);
// вызывающий код ветвится только по errors.Is, никогда по тексту сообщения.
// Любая ошибка, не являющаяся ни ErrValidation, ни ErrNotFound, считается
// внутренней.
var ErrValidation = errors.New("некорректные данные запроса")
