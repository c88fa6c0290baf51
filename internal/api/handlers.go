package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"movie-api/internal/apperror"
	"movie-api/internal/catalog"
	"movie-api/internal/domain"
	"movie-api/internal/service"
)

const moviesBasePath = "/movies"

// MovieHandler owns the HTTP surface of the movie service.
type MovieHandler struct {
	service *service.MovieService
	logger  *slog.Logger
}

func NewMovieHandler(s *service.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{service: s, logger: logger}
}

// actionResponse is the envelope for mutating operations.
type actionResponse struct {
	Status string        `json:"status"`
	Data   *domain.Movie `json:"data"`
	Path   string        `json:"path"`
}

// errorResponse is the uniform failure shape; its HTTP status equals Code.
type errorResponse struct {
	Success bool                  `json:"success"`
	Code    int                   `json:"code"`
	Error   string                `json:"error"`
	Fields  []apperror.FieldError `json:"fields,omitempty"`
}

func (h *MovieHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to encode JSON response",
				slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

// respondError maps a service failure onto the error envelope. Anything that
// is not a coded application error, or that carries a code outside the HTTP
// error range, is normalized to a generic 500; internal detail stays in the
// logs.
func (h *MovieHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Code < 400 || appErr.Code > 599 {
		h.logger.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		h.respondJSON(w, r, http.StatusInternalServerError, errorResponse{
			Code:  http.StatusInternalServerError,
			Error: "internal server error",
		})
		return
	}

	if appErr.Code >= 500 {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()), slog.String("path", r.URL.Path))
	}

	h.respondJSON(w, r, appErr.Code, errorResponse{
		Code:   appErr.Code,
		Error:  appErr.Message,
		Fields: appErr.Fields,
	})
}

func (h *MovieHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request body", slog.String("error", err.Error()))
		h.respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:  http.StatusBadRequest,
			Error: "invalid request payload",
		})
		return false
	}
	return true
}

func moviePath(imdbID string) string {
	return moviesBasePath + "/" + imdbID
}

// GetMovies serves GET /movies. Without query parameters it returns the
// persistent collection; genre/actor/imdbSort switch it to the static
// catalog.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := catalog.QueryParams{
		Genre:    query.Get("genre"),
		Actor:    query.Get("actor"),
		ImdbSort: query.Get("imdbSort"),
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, result)
}

func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	imdbID := mux.Vars(r)["imdbId"]

	movie, err := h.service.Get(r.Context(), imdbID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMovieRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusCreated, actionResponse{
		Status: string(service.StatusCreated),
		Data:   movie,
		Path:   moviePath(movie.ImdbID),
	})
}

// UpsertMovie serves PUT /movies: create-or-replace by the imdbId in the
// body. 201 with status "created" for a new record, 200 with status "edited"
// for a replaced one.
func (h *MovieHandler) UpsertMovie(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMovieRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	movie, status, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpStatus := http.StatusOK
	if status == service.StatusCreated {
		httpStatus = http.StatusCreated
	}
	h.respondJSON(w, r, httpStatus, actionResponse{
		Status: string(status),
		Data:   movie,
		Path:   moviePath(movie.ImdbID),
	})
}

func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	imdbID := mux.Vars(r)["imdbId"]

	var patch domain.UpdateMovieRequest
	if !h.decodeBody(w, r, &patch) {
		return
	}

	movie, err := h.service.Update(r.Context(), imdbID, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, actionResponse{
		Status: string(service.StatusEdited),
		Data:   movie,
		Path:   moviePath(movie.ImdbID),
	})
}

func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	imdbID := mux.Vars(r)["imdbId"]

	if err := h.service.Delete(r.Context(), imdbID); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// GetData serves GET /movies/data/{dataType} with one of the fixed catalog
// aggregates.
func (h *MovieHandler) GetData(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["dataType"]

	result, err := h.service.Data(kind)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, result)
}
