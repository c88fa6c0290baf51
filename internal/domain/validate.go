package domain

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// IMDb identifiers start with a known two-letter prefix (title, name,
// company, event, character, news) followed by 5-10 word characters.
var imdbIDPattern = regexp.MustCompile(`^(tt|nm|co|ev|ch|ni)\w{5,10}$`)

// NewValidator returns a validator with the movie-specific rules registered.
// Field names in validation errors use the json tag, not the Go field name.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("imdbid", validImdbID)
	_ = v.RegisterValidation("releaseyear", validReleaseYear)
	_ = v.RegisterValidation("ratingprecision", validRatingPrecision)

	return v
}

func validImdbID(fl validator.FieldLevel) bool {
	return imdbIDPattern.MatchString(fl.Field().String())
}

func validReleaseYear(fl validator.FieldLevel) bool {
	year, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return year >= 1700
}

// validRatingPrecision allows at most one fractional digit (7.5 passes,
// 7.55 does not). The epsilon absorbs float64 representation noise.
func validRatingPrecision(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}
