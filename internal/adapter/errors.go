package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	// ErrBadRequest corresponds to a 400 response (validation failure).
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound corresponds to a 404 response: the note does not exist
	// (or does not exist anymore).
	ErrNotFound = errors.New("not found")

	// ErrInternalServerError corresponds to a 500 response.
	ErrInternalServerError = errors.New("internal server error")
)
