// Package errs defines the application error type every handler
// failure funnels through. An *Error carries the HTTP status the
// single translation point in the controllers maps it to; anything
// else becomes a 500.
package errs

import (
	"errors"
	"net/http"
)

type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *Error {
	return New(message, http.StatusUnauthorized)
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

// Upstream wraps a provider-side failure. Not retried anywhere.
func Upstream(message string) *Error {
	return New(message, http.StatusInternalServerError)
}

var (
	ErrUserExists         = BadRequest("user with this email or username already exists")
	ErrInvalidCredentials = Unauthorized("invalid credentials")
	ErrUserNotFound       = NotFound("user not found")

	ErrMovieNotFound = NotFound("movie not found")
	// ErrMovieExists signals a lost insert race on the unique tmdb_id
	// index; callers re-read instead of surfacing it.
	ErrMovieExists = BadRequest("movie already exists")

	ErrReviewNotFound = NotFound("review not found")
	// ErrReviewExists signals a lost insert race on the (user, movie)
	// index; callers convert it into an update of the existing review.
	ErrReviewExists = BadRequest("review already exists for this movie")

	ErrAlreadyInWatchlist = BadRequest("movie already in watchlist")
	ErrWatchlistNotFound  = NotFound("movie not found in watchlist")
)

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
