package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"movie-api/internal/domain"
)

const movieColumns = "imdb_id, title, year, runtime, imdb_rating, imdb_votes"

// PostgresMovieStore implements MovieStore on PostgreSQL.
type PostgresMovieStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresMovieStore(db *sqlx.DB, logger *slog.Logger) (*PostgresMovieStore, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	return &PostgresMovieStore{db: db, logger: logger}, nil
}

func (s *PostgresMovieStore) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY imdb_id`

	movies := []domain.Movie{}
	if err := s.db.SelectContext(ctx, &movies, query); err != nil {
		s.logger.ErrorContext(ctx, "failed to list movies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return movies, nil
}

func (s *PostgresMovieStore) GetByID(ctx context.Context, imdbID string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1`

	var movie domain.Movie
	if err := s.db.GetContext(ctx, &movie, query, imdbID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		s.logger.ErrorContext(ctx, "failed to get movie", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting movie %s: %w", imdbID, err)
	}
	return &movie, nil
}

func (s *PostgresMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (` + movieColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		movie.ImdbID, movie.Title, movie.Year, movie.Runtime, movie.ImdbRating, movie.ImdbVotes,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			s.logger.WarnContext(ctx, "movie already exists", slog.String("imdbId", movie.ImdbID))
			return ErrMovieAlreadyExists
		}
		s.logger.ErrorContext(ctx, "failed to create movie", slog.String("imdbId", movie.ImdbID), slog.String("error", err.Error()))
		return fmt.Errorf("creating movie %s: %w", movie.ImdbID, err)
	}
	s.logger.InfoContext(ctx, "movie created", slog.String("imdbId", movie.ImdbID))
	return nil
}

// Update builds a SET clause from the non-nil fields only, so absent fields
// keep their stored values. An empty update degrades to a plain read.
func (s *PostgresMovieStore) Update(ctx context.Context, imdbID string, fields MovieUpdate) (*domain.Movie, error) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Year != nil {
		add("year", *fields.Year)
	}
	if fields.Runtime != nil {
		add("runtime", *fields.Runtime)
	}
	if fields.ImdbRating != nil {
		add("imdb_rating", *fields.ImdbRating)
	}
	if fields.ImdbVotes != nil {
		add("imdb_votes", *fields.ImdbVotes)
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, imdbID)
	}

	args = append(args, imdbID)
	query := fmt.Sprintf(
		`UPDATE movies SET %s WHERE imdb_id = $%d RETURNING `+movieColumns,
		strings.Join(sets, ", "), len(args),
	)

	var movie domain.Movie
	if err := s.db.GetContext(ctx, &movie, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		s.logger.ErrorContext(ctx, "failed to update movie", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("updating movie %s: %w", imdbID, err)
	}
	s.logger.InfoContext(ctx, "movie updated", slog.String("imdbId", imdbID))
	return &movie, nil
}

func (s *PostgresMovieStore) Delete(ctx context.Context, imdbID string) error {
	query := `DELETE FROM movies WHERE imdb_id = $1`

	result, err := s.db.ExecContext(ctx, query, imdbID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete movie", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
		return fmt.Errorf("deleting movie %s: %w", imdbID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting movie %s: %w", imdbID, err)
	}
	if rowsAffected == 0 {
		return ErrMovieNotFound
	}
	s.logger.InfoContext(ctx, "movie deleted", slog.String("imdbId", imdbID))
	return nil
}
