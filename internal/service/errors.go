package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrWrongCredentials = errors.New("wrong email or password")

	ErrCourseExists     = errors.New("course already exists")
	ErrInvalidCourse    = errors.New("course id and title are required")
	ErrLearnerNotFound  = errors.New("learner not found")
	ErrAccessForbidden  = errors.New("access forbidden")
	ErrBackendUnhealthy = errors.New("backend unavailable")
)
