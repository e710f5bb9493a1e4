package adapter

import (
	"errors"
	"fmt"
)

// Transport-level sentinel errors produced by [mapHTTPError]. Callers match
// them with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a structured failure reported by the router backend inside its
// response envelope: an HTTP-like status plus a machine-readable code and a
// human-readable message. The code is passed through verbatim from the
// backend; the error classifier relies on that.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
}
