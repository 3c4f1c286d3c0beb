package service

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// stubBackend lets each test override only the calls it cares about.
type stubBackend struct {
	LoginFn            func(ctx context.Context, username, password string) (domain.TokenPair, error)
	RegisterFn         func(ctx context.Context, reg domain.Registration) error
	UserTypeFn         func(ctx context.Context, sid string) (domain.Role, error)
	DoctorRequestsFn   func(ctx context.Context, sid string) ([]domain.DoctorRequest, error)
	RequestAccessFn    func(ctx context.Context, sid, patientAddress string) error
	PatientHistoryFn   func(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error)
	CurrentVitalsFn    func(ctx context.Context, sid string) (domain.VitalRecord, error)
	VitalsHistoryFn    func(ctx context.Context, sid string) ([]domain.VitalRecord, error)
	AccessRequestsFn   func(ctx context.Context, sid string) ([]domain.AccessRequest, error)
	PreviousRequestsFn func(ctx context.Context, sid string) ([]domain.PreviousGrant, error)
	AddVitalsFn        func(ctx context.Context, sid string, v domain.NewVitals) error
	ApproveAccessFn    func(ctx context.Context, sid, doctorAddress string, grantedAt int64) error
	RevokeAccessFn     func(ctx context.Context, sid, doctorAddress string, revokedAt int64) error
}

func (s *stubBackend) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return domain.TokenPair{}, nil
}

func (s *stubBackend) Register(ctx context.Context, reg domain.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return nil
}

func (s *stubBackend) UserType(ctx context.Context, sid string) (domain.Role, error) {
	if s.UserTypeFn != nil {
		return s.UserTypeFn(ctx, sid)
	}
	return domain.RoleUnknown, nil
}

func (s *stubBackend) DoctorRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error) {
	if s.DoctorRequestsFn != nil {
		return s.DoctorRequestsFn(ctx, sid)
	}
	return nil, nil
}

func (s *stubBackend) RequestAccess(ctx context.Context, sid, patientAddress string) error {
	if s.RequestAccessFn != nil {
		return s.RequestAccessFn(ctx, sid, patientAddress)
	}
	return nil
}

func (s *stubBackend) PatientHistoryFor(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error) {
	if s.PatientHistoryFn != nil {
		return s.PatientHistoryFn(ctx, sid, patientAddress)
	}
	return domain.PatientHistory{}, nil
}

func (s *stubBackend) CurrentVitals(ctx context.Context, sid string) (domain.VitalRecord, error) {
	if s.CurrentVitalsFn != nil {
		return s.CurrentVitalsFn(ctx, sid)
	}
	return domain.VitalRecord{}, nil
}

func (s *stubBackend) VitalsHistory(ctx context.Context, sid string) ([]domain.VitalRecord, error) {
	if s.VitalsHistoryFn != nil {
		return s.VitalsHistoryFn(ctx, sid)
	}
	return nil, nil
}

func (s *stubBackend) AccessRequests(ctx context.Context, sid string) ([]domain.AccessRequest, error) {
	if s.AccessRequestsFn != nil {
		return s.AccessRequestsFn(ctx, sid)
	}
	return nil, nil
}

func (s *stubBackend) PreviousRequests(ctx context.Context, sid string) ([]domain.PreviousGrant, error) {
	if s.PreviousRequestsFn != nil {
		return s.PreviousRequestsFn(ctx, sid)
	}
	return nil, nil
}

func (s *stubBackend) AddVitals(ctx context.Context, sid string, v domain.NewVitals) error {
	if s.AddVitalsFn != nil {
		return s.AddVitalsFn(ctx, sid, v)
	}
	return nil
}

func (s *stubBackend) ApproveAccess(ctx context.Context, sid, doctorAddress string, grantedAt int64) error {
	if s.ApproveAccessFn != nil {
		return s.ApproveAccessFn(ctx, sid, doctorAddress, grantedAt)
	}
	return nil
}

func (s *stubBackend) RevokeAccess(ctx context.Context, sid, doctorAddress string, revokedAt int64) error {
	if s.RevokeAccessFn != nil {
		return s.RevokeAccessFn(ctx, sid, doctorAddress, revokedAt)
	}
	return nil
}

// stubSessions is an in-memory SessionStore for service tests.
type stubSessions struct {
	saved   map[string]domain.TokenPair
	deleted []string
	saveErr error
}

func newStubSessions() *stubSessions {
	return &stubSessions{saved: make(map[string]domain.TokenPair)}
}

func (s *stubSessions) Get(_ context.Context, sid string) (domain.TokenPair, error) {
	pair, ok := s.saved[sid]
	if !ok {
		return domain.TokenPair{}, domain.ErrSessionNotFound
	}
	return pair, nil
}

func (s *stubSessions) Save(_ context.Context, sid string, pair domain.TokenPair) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[sid] = pair
	return nil
}

func (s *stubSessions) Delete(_ context.Context, sid string) error {
	s.deleted = append(s.deleted, sid)
	delete(s.saved, sid)
	return nil
}
