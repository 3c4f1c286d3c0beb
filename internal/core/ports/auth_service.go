package ports

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

type AuthService interface {
	// Login authenticates against the backend, persists the issued token
	// pair under a fresh session id, and resolves the user's role.
	Login(ctx context.Context, username, password string) (sid string, role domain.Role, err error)
	Register(ctx context.Context, reg domain.Registration) error
	// Logout clears every trace of the session.
	Logout(ctx context.Context, sid string) error
	// Resolve returns the role for an existing session by asking the
	// backend; it never decodes the token locally.
	Resolve(ctx context.Context, sid string) (domain.Role, error)
}
