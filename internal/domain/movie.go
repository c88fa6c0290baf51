package domain

// Movie is the persistent movie record. ImdbID is the external business key
// and never changes after creation.
type Movie struct {
	ImdbID     string  `json:"imdbId" db:"imdb_id"`
	Title      string  `json:"title" db:"title"`
	Year       string  `json:"year" db:"year"`
	Runtime    int     `json:"runtime" db:"runtime"`
	ImdbRating float64 `json:"imdbRating" db:"imdb_rating"`
	ImdbVotes  int     `json:"imdbVotes" db:"imdb_votes"`
}

// CreateMovieRequest is the body for POST /movies and PUT /movies.
// Every field is required. Numeric fields are pointers so that a valid zero
// (imdbRating 0, imdbVotes 0) is distinguishable from an absent field.
type CreateMovieRequest struct {
	ImdbID     string   `json:"imdbId" validate:"required,imdbid"`
	Title      string   `json:"title" validate:"required"`
	Year       string   `json:"year" validate:"required,releaseyear"`
	Runtime    *int     `json:"runtime" validate:"required,gte=5,lte=250"`
	ImdbRating *float64 `json:"imdbRating" validate:"required,gte=0,lte=10,ratingprecision"`
	ImdbVotes  *int     `json:"imdbVotes" validate:"required"`
}

// Movie builds the entity from a validated request.
func (r CreateMovieRequest) Movie() *Movie {
	return &Movie{
		ImdbID:     r.ImdbID,
		Title:      r.Title,
		Year:       r.Year,
		Runtime:    *r.Runtime,
		ImdbRating: *r.ImdbRating,
		ImdbVotes:  *r.ImdbVotes,
	}
}

// UpdateMovieRequest is the body for PATCH /movies/{imdbId}. All fields are
// optional; present fields are validated with the create constraints. The
// identifier comes from the URL path, so an imdbId in the body is rejected.
type UpdateMovieRequest struct {
	ImdbID     *string  `json:"imdbId" validate:"isdefault"`
	Title      *string  `json:"title" validate:"omitempty,min=1"`
	Year       *string  `json:"year" validate:"omitempty,releaseyear"`
	Runtime    *int     `json:"runtime" validate:"omitempty,gte=5,lte=250"`
	ImdbRating *float64 `json:"imdbRating" validate:"omitempty,gte=0,lte=10,ratingprecision"`
	ImdbVotes  *int     `json:"imdbVotes"`
}
