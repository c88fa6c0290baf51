package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"movie-api/internal/apperror"
)

// validateStruct runs the validator and converts its failures into a single
// apperror carrying one message per offending field.
func (s *MovieService) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens for a non-struct argument.
		return apperror.Storage(err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return apperror.Validation(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "imdbid":
		return "imdbId must start with tt, nm, co, ev, ch or ni followed by 5 to 10 alphanumeric characters"
	case "releaseyear":
		return "year must be a number greater than or equal to 1700"
	case "ratingprecision":
		return "imdbRating must have at most one decimal place"
	case "isdefault":
		return "imdbId cannot be supplied in the body; the identifier comes from the URL path"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
