package handler

import (
	"errors"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// errMessage turns a failure into the message shown to the user: the
// backend's own detail when it sent one, otherwise a generic fallback.
func errMessage(err error) string {
	var be *domain.BackendError
	if errors.As(err, &be) {
		return be.Error()
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, domain.ErrAccessDenied):
		return "Access not granted"
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthenticated):
		return "Your session has expired, please log in again"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "The server could not be reached, please try again"
	}
	return "An error occurred"
}
