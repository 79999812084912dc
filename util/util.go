package util

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v5"
)

// ErrorResponse is the body returned by every failing endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse wraps an internal error into a bad request response.
// The given message is what the client sees, err only shows up in logs.
func NewErrorResponse(err error, message string) error {
	httpError := echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Message: message})
	httpError.Internal = err
	return httpError
}

// NewNotFoundResponse is NewErrorResponse with a 404 status.
func NewNotFoundResponse(err error, message string) error {
	httpError := echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Message: message})
	httpError.Internal = err
	return httpError
}

// Round rounds to two decimal places. All displayed point values and totals
// go through here so that summing rounded parts stays consistent.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}

func MapSlice[T any, R any](values []T, mapFunc func(value T) R) []R {
	result := make([]R, 0, len(values))
	for _, value := range values {
		result = append(result, mapFunc(value))
	}
	return result
}
