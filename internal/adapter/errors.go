package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("server unavailable")
)

var (
	// ErrNotAuthenticated is returned before a request that needs a token is
	// sent without one.
	ErrNotAuthenticated = errors.New("no bearer token set")

	// ErrOwnerMismatch is returned when the server answers for a different
	// account than the one asked for.
	ErrOwnerMismatch = errors.New("response belongs to another account")
)
