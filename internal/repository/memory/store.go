// Package memory содержит in-memory реализацию хранилищ сервиса: универсальное
// хранилище Store и построенные на нём репозитории пользователей и фильмов.
// Состояние живёт только в течение жизни процесса.
package memory

import (
	"fmt"
	"sort"
	"sync"

	repo "filmorate/internal/repository/interfaces"
)

// Entity — контракт сущности, которую умеет хранить Store.
type Entity interface {
	EntityID() int64
	SetEntityID(id int64)
}

// Store — потокобезопасное in-memory хранилище сущностей одного вида.
//
// Хранилище владеет картой ID → сущность и назначением идентификаторов:
// ID строго возрастают на протяжении жизни хранилища и никогда не
// переиспользуются после удаления. Семантика частичного обновления
// задаётся функцией слияния, специфичной для вида сущности.
//
// Один мьютекс хранилища удерживается на протяжении одной логической
// операции, поэтому парные мутации (MutatePair) выглядят атомарными
// для наблюдателей.
type Store[T Entity] struct {
	kind string // Название вида сущности для сообщений об ошибках

	mu     sync.Mutex
	items  map[int64]T
	lastID int64
	merge  func(stored, updated T)
}

// NewStore создаёт хранилище сущностей вида kind с функцией слияния merge.
// merge вызывается под блокировкой хранилища и переносит в stored только те
// поля updated, которые отличаются от текущих и проходят предикаты
// корректности.
func NewStore[T Entity](kind string, merge func(stored, updated T)) *Store[T] {
	return &Store[T]{
		kind:  kind,
		items: make(map[int64]T),
		merge: merge,
	}
}

// Add сохраняет новую сущность, назначая ей следующий ID.
// Возвращает ErrValidation для nil-сущности.
func (s *Store[T]) Add(e T) (T, error) {
	var zero T
	if any(e) == any(zero) {
		return zero, fmt.Errorf("запрос на добавление поступил с пустым телом: %w", repo.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	e.SetEntityID(s.lastID)
	s.items[s.lastID] = e
	return e, nil
}

// GetByID возвращает сущность по идентификатору.
func (s *Store[T]) GetByID(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	return e, nil
}

// Remove удаляет сущность и возвращает её.
func (s *Store[T]) Remove(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	delete(s.items, id)
	return e, nil
}

// Update выполняет частичное обновление хранимой сущности функцией слияния.
// Возвращает ErrValidation для nil-сущности или нулевого ID, ErrNotFound при
// отсутствии сущности с таким ID.
func (s *Store[T]) Update(updated T) (T, error) {
	var zero T
	if any(updated) == any(zero) {
		return zero, fmt.Errorf("запрос на обновление поступил с пустым телом: %w", repo.ErrValidation)
	}
	if updated.EntityID() == 0 {
		return zero, fmt.Errorf("ID должен быть указан: %w", repo.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[updated.EntityID()]
	if !ok {
		return zero, s.notFound(updated.EntityID())
	}
	s.merge(stored, updated)
	return stored, nil
}

// List возвращает все сущности, отсортированные по возрастанию ID.
// Порядок совпадает с порядком вставки, поскольку ID монотонно растут.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]T, 0, len(s.items))
	for _, e := range s.items {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EntityID() < all[j].EntityID() })
	return all
}

// Mutate применяет fn к сущности с данным ID под блокировкой хранилища.
func (s *Store[T]) Mutate(id int64, fn func(e T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	fn(e)
	return e, nil
}

// MutatePair применяет fn к двум сущностям под одной блокировкой, так что
// парная мутация (например, взаимная связь друзей) атомарна для
// наблюдателей. Возвращает вторую сущность.
func (s *Store[T]) MutatePair(firstID, secondID int64, fn func(first, second T)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	first, ok := s.items[firstID]
	if !ok {
		return zero, s.notFound(firstID)
	}
	second, ok := s.items[secondID]
	if !ok {
		return zero, s.notFound(secondID)
	}
	fn(first, second)
	return second, nil
}

func (s *Store[T]) notFound(id int64) error {
	return fmt.Errorf("%s с ID: %d не найден: %w", s.kind, id, repo.ErrNotFound)
}
