package film

import (
	domain "filmorate/internal/domain/film"
	"filmorate/pkg/date"
)

// FilmRequest описывает тело запроса создания фильма (POST /films).
type FilmRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"max=200"`
	ReleaseDate date.Date `json:"releaseDate"`
	Duration    int64     `json:"duration" binding:"required,gt=0"`
}

// FilmUpdateRequest описывает тело запроса обновления (PUT /films).
// Все поля, кроме ID, опциональны: пустое поле оставляет хранимое значение
// без изменений.
type FilmUpdateRequest struct {
	ID          int64     `json:"id" binding:"required,gt=0"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ReleaseDate date.Date `json:"releaseDate"`
	Duration    int64     `json:"duration"`
}

// FilmResponse описывает фильм в ответах API.
type FilmResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ReleaseDate date.Date `json:"releaseDate"`
	Duration    int64     `json:"duration"`
	Likes       []int64   `json:"likes"`
}

// toDomain маппит тело запроса создания в доменную модель.
func (r *FilmRequest) toDomain() *domain.Film {
	return &domain.Film{
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Duration:    r.Duration,
	}
}

// toDomain маппит тело запроса обновления в доменную модель с заполненными
// только переданными полями.
func (r *FilmUpdateRequest) toDomain() *domain.Film {
	return &domain.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Duration:    r.Duration,
	}
}

// toFilmResponse маппит доменную модель в DTO.
func toFilmResponse(f *domain.Film) FilmResponse {
	return FilmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
		Likes:       f.LikedBy(),
	}
}

// toFilmResponses маппит список доменных моделей в список DTO.
func toFilmResponses(films []*domain.Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		out = append(out, toFilmResponse(f))
	}
	return out
}
