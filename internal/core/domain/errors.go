package domain

import "errors"

var (
	// ErrUnauthenticated means no usable session credential exists; the
	// only recovery is the login page.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrSessionExpired means both the access token and the refresh
	// exchange failed; the stored session is dead.
	ErrSessionExpired = errors.New("session expired")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied maps the backend's 403 on a patient whose history
	// the doctor has no active grant for.
	ErrAccessDenied = errors.New("access not granted")

	ErrSessionNotFound = errors.New("session not found")

	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError carries the error detail the backend returned so callers can
// surface it verbatim to the user.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "an error occurred"
}

// Unwrap lets errors.Is match the sentinel behind the status code.
func (e *BackendError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrInvalidCredentials
	case 403:
		return ErrAccessDenied
	default:
		return nil
	}
}
