package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(handler *MovieHandler, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware(logger))

	moviesRouter := router.PathPrefix(moviesBasePath).Subrouter()

	// The data route must precede the {imdbId} route so that "data" is not
	// captured as an identifier.
	moviesRouter.HandleFunc("/data/{dataType}", handler.GetData).Methods(http.MethodGet)

	moviesRouter.HandleFunc("", handler.GetMovies).Methods(http.MethodGet)
	moviesRouter.HandleFunc("", handler.CreateMovie).Methods(http.MethodPost)
	moviesRouter.HandleFunc("", handler.UpsertMovie).Methods(http.MethodPut)

	moviesRouter.HandleFunc("/{imdbId}", handler.GetMovieByID).Methods(http.MethodGet)
	moviesRouter.HandleFunc("/{imdbId}", handler.UpdateMovie).Methods(http.MethodPatch)
	moviesRouter.HandleFunc("/{imdbId}", handler.DeleteMovie).Methods(http.MethodDelete)

	return router
}
