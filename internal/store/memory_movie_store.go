package store

import (
	"context"
	"sort"
	"sync"

	"movie-api/internal/domain"
)

// MemoryMovieStore is a map-backed MovieStore. It serves the test suite and
// the no-database development mode; semantics match PostgresMovieStore.
type MemoryMovieStore struct {
	mu     sync.RWMutex
	movies map[string]domain.Movie
}

func NewMemoryMovieStore() *MemoryMovieStore {
	return &MemoryMovieStore{movies: make(map[string]domain.Movie)}
}

func (m *MemoryMovieStore) List(ctx context.Context) ([]domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movies := make([]domain.Movie, 0, len(m.movies))
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	// Map iteration order is random; keep listings deterministic.
	sort.Slice(movies, func(i, j int) bool { return movies[i].ImdbID < movies[j].ImdbID })
	return movies, nil
}

func (m *MemoryMovieStore) GetByID(ctx context.Context, imdbID string) (*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movie, ok := m.movies[imdbID]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return &movie, nil
}

func (m *MemoryMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.movies[movie.ImdbID]; exists {
		return ErrMovieAlreadyExists
	}
	m.movies[movie.ImdbID] = *movie
	return nil
}

func (m *MemoryMovieStore) Update(ctx context.Context, imdbID string, fields MovieUpdate) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, ok := m.movies[imdbID]
	if !ok {
		return nil, ErrMovieNotFound
	}
	if fields.Title != nil {
		movie.Title = *fields.Title
	}
	if fields.Year != nil {
		movie.Year = *fields.Year
	}
	if fields.Runtime != nil {
		movie.Runtime = *fields.Runtime
	}
	if fields.ImdbRating != nil {
		movie.ImdbRating = *fields.ImdbRating
	}
	if fields.ImdbVotes != nil {
		movie.ImdbVotes = *fields.ImdbVotes
	}
	m.movies[imdbID] = movie
	return &movie, nil
}

func (m *MemoryMovieStore) Delete(ctx context.Context, imdbID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movies[imdbID]; !ok {
		return ErrMovieNotFound
	}
	delete(m.movies, imdbID)
	return nil
}
