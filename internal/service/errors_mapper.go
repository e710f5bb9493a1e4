package service

import (
	"errors"

	"github.com/certdesk/certdesk/internal/adapter"
)

// mapAdapterError translates a transport-level adapter error into a service
// business error. Structured backend failures keep their code-based mapping;
// anything unmapped is returned unchanged so the action layer can still
// classify it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case "AUTH_FAILED":
			return ErrWrongCredentials
		case "COURSE_EXISTS":
			return ErrCourseExists
		case "NOT_FOUND":
			return ErrLearnerNotFound
		}
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessForbidden
	case errors.Is(err, adapter.ErrNotFound):
		return ErrLearnerNotFound
	case errors.Is(err, adapter.ErrConflict):
		return ErrCourseExists
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return ErrBackendUnhealthy
	}

	return err
}
