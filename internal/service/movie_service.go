// Package service implements the movie operations: validation, the
// create/edit disambiguation of upsert, and the routing between the
// persistent collection and the static catalog.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"movie-api/internal/apperror"
	"movie-api/internal/catalog"
	"movie-api/internal/domain"
	"movie-api/internal/store"
)

// UpsertStatus reports which branch an upsert took.
type UpsertStatus string

const (
	StatusCreated UpsertStatus = "created"
	StatusEdited  UpsertStatus = "edited"
)

type MovieService struct {
	store    store.MovieStore
	catalog  *catalog.Catalog
	validate *validator.Validate
	logger   *slog.Logger
}

func New(s store.MovieStore, c *catalog.Catalog, v *validator.Validate, logger *slog.Logger) *MovieService {
	return &MovieService{
		store:    s,
		catalog:  c,
		validate: v,
		logger:   logger,
	}
}

// List returns the whole persistent collection when no query parameter is
// supplied; any parameter switches the request to the static catalog.
func (s *MovieService) List(ctx context.Context, params catalog.QueryParams) (any, error) {
	if !params.Empty() {
		return s.catalog.Query(params), nil
	}

	movies, err := s.store.List(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, imdbID string) (*domain.Movie, error) {
	movie, err := s.store.GetByID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return nil, apperror.NotFound("movie with imdbId %s not found", imdbID)
		}
		return nil, apperror.Storage(err)
	}
	return movie, nil
}

// Create validates the full record, refuses an already-taken imdbId and
// persists. Validation always runs before any store access.
func (s *MovieService) Create(ctx context.Context, req domain.CreateMovieRequest) (*domain.Movie, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.exists(ctx, req.ImdbID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists("movie with imdbId %s already exists", req.ImdbID)
	}

	movie := req.Movie()
	if err := s.store.Create(ctx, movie); err != nil {
		// The existence check and the insert are not one transaction; the
		// store's unique constraint catches a concurrent create.
		if errors.Is(err, store.ErrMovieAlreadyExists) {
			return nil, apperror.AlreadyExists("movie with imdbId %s already exists", req.ImdbID)
		}
		return nil, apperror.Storage(err)
	}

	s.logger.InfoContext(ctx, "movie created", slog.String("imdbId", movie.ImdbID))
	return movie, nil
}

// Upsert creates or replaces by the identifier in the body. The branch is
// decided by a real existence lookup: found means edit, absent means create.
func (s *MovieService) Upsert(ctx context.Context, req domain.CreateMovieRequest) (*domain.Movie, UpsertStatus, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, "", err
	}

	exists, err := s.exists(ctx, req.ImdbID)
	if err != nil {
		return nil, "", err
	}

	if exists {
		movie, err := s.store.Update(ctx, req.ImdbID, store.MovieUpdate{
			Title:      &req.Title,
			Year:       &req.Year,
			Runtime:    req.Runtime,
			ImdbRating: req.ImdbRating,
			ImdbVotes:  req.ImdbVotes,
		})
		if err != nil {
			return nil, "", apperror.Storage(err)
		}
		s.logger.InfoContext(ctx, "movie replaced", slog.String("imdbId", req.ImdbID))
		return movie, StatusEdited, nil
	}

	movie := req.Movie()
	if err := s.store.Create(ctx, movie); err != nil {
		if errors.Is(err, store.ErrMovieAlreadyExists) {
			return nil, "", apperror.AlreadyExists("movie with imdbId %s already exists", req.ImdbID)
		}
		return nil, "", apperror.Storage(err)
	}
	s.logger.InfoContext(ctx, "movie created", slog.String("imdbId", req.ImdbID))
	return movie, StatusCreated, nil
}

// Update applies a partial patch to an existing record. The path identifier
// is authoritative; the validator rejects any imdbId in the body.
func (s *MovieService) Update(ctx context.Context, imdbID string, patch domain.UpdateMovieRequest) (*domain.Movie, error) {
	if err := s.validateStruct(patch); err != nil {
		return nil, err
	}

	exists, err := s.exists(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("movie with imdbId %s not found", imdbID)
	}

	movie, err := s.store.Update(ctx, imdbID, store.MovieUpdate{
		Title:      patch.Title,
		Year:       patch.Year,
		Runtime:    patch.Runtime,
		ImdbRating: patch.ImdbRating,
		ImdbVotes:  patch.ImdbVotes,
	})
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return nil, apperror.NotFound("movie with imdbId %s not found", imdbID)
		}
		return nil, apperror.Storage(err)
	}

	s.logger.InfoContext(ctx, "movie updated", slog.String("imdbId", imdbID))
	return movie, nil
}

// Delete requires the record to exist; deleting an absent id fails and has
// no side effects.
func (s *MovieService) Delete(ctx context.Context, imdbID string) error {
	if err := s.store.Delete(ctx, imdbID); err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return apperror.NotFound("movie with imdbId %s not found", imdbID)
		}
		return apperror.Storage(err)
	}
	s.logger.InfoContext(ctx, "movie deleted", slog.String("imdbId", imdbID))
	return nil
}

// Data computes a fixed aggregate over the static catalog.
func (s *MovieService) Data(kind string) (any, error) {
	result, err := s.catalog.Data(kind)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedDataType) {
			return nil, apperror.UnsupportedDataType(kind)
		}
		return nil, apperror.Storage(err)
	}
	return result, nil
}

// exists distinguishes "no such record" from a store failure.
func (s *MovieService) exists(ctx context.Context, imdbID string) (bool, error) {
	_, err := s.store.GetByID(ctx, imdbID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrMovieNotFound):
		return false, nil
	default:
		return false, apperror.Storage(err)
	}
}
