package store

import (
	"context"
	"errors"

	"movie-api/internal/domain"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieAlreadyExists = errors.New("movie already exists")
)

// MovieUpdate carries the fields of a partial update. Nil fields are left
// untouched.
type MovieUpdate struct {
	Title      *string
	Year       *string
	Runtime    *int
	ImdbRating *float64
	ImdbVotes  *int
}

// MovieStore is the persistence port for movie records, keyed by imdbId.
// Implementations return ErrMovieNotFound / ErrMovieAlreadyExists for the
// expected conditions; any other error is a storage failure.
type MovieStore interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, imdbID string) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) error
	// Update applies the non-nil fields and returns the post-update record.
	Update(ctx context.Context, imdbID string, fields MovieUpdate) (*domain.Movie, error)
	Delete(ctx context.Context, imdbID string) error
}
