package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/pkg/metrics"
)

// AuthService implements login, registration, logout and role resolution.
type AuthService struct {
	backend  ports.Backend
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(backend ports.Backend, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, sessions: sessions, logger: logger}
}

// Login authenticates against the backend, stores the issued pair under a
// fresh session id, then resolves the role with a follow-up lookup. The
// token is never decoded for its role claim; the backend is asked instead.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Role, error) {
	if username == "" || password == "" {
		return "", domain.RoleUnknown, domain.ErrInvalidCredentials
	}

	pair, err := s.backend.Login(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", domain.RoleUnknown, err
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, pair); err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", domain.RoleUnknown, err
	}

	role, err := s.backend.UserType(ctx, sid)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		_ = s.sessions.Delete(ctx, sid)
		return "", domain.RoleUnknown, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", username).Str("role", role.String()).Msg("login")
	return sid, role, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	if reg.UserType != domain.RoleDoctor && reg.UserType != domain.RolePatient {
		return domain.ErrInvalidCredentials
	}
	if err := s.backend.Register(ctx, reg); err != nil {
		return err
	}
	s.logger.Info().Str("username", reg.Username).Str("role", reg.UserType.String()).Msg("registered")
	return nil
}

// Logout clears the persisted session state; nothing else survives it.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// Resolve determines the role for an existing session. Any failure resolves
// to unauthenticated rather than an error page; the caller redirects to
// login.
func (s *AuthService) Resolve(ctx context.Context, sid string) (domain.Role, error) {
	if sid == "" {
		return domain.RoleUnknown, domain.ErrUnauthenticated
	}
	return s.backend.UserType(ctx, sid)
}
