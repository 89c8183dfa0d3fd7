package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Service-layer
// code matches on these with errors.Is instead of inspecting status codes.
var (
	// ErrBadRequest corresponds to HTTP 400 (the server rejected the payload).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized corresponds to HTTP 401 (bad credentials or an expired
	// token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden corresponds to HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound corresponds to HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict corresponds to HTTP 409 (e.g. login already taken).
	ErrConflict = errors.New("conflict")

	// ErrBadGateway corresponds to HTTP 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrInternalServerError corresponds to HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
