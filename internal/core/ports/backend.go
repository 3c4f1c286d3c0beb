package ports

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// Backend is the outbound client for the medical-records REST API.
//
// Authenticated operations take the session id; the implementation reads the
// token pair from the session store at call time, attaches the access token
// as a bearer credential, and on an expiry failure exchanges the refresh
// token and retries once, persisting the refreshed pair.
type Backend interface {
	Login(ctx context.Context, username, password string) (domain.TokenPair, error)
	Register(ctx context.Context, reg domain.Registration) error

	UserType(ctx context.Context, sid string) (domain.Role, error)

	// Doctor side.
	DoctorRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error)
	RequestAccess(ctx context.Context, sid, patientAddress string) error
	PatientHistoryFor(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error)

	// Patient side.
	CurrentVitals(ctx context.Context, sid string) (domain.VitalRecord, error)
	VitalsHistory(ctx context.Context, sid string) ([]domain.VitalRecord, error)
	AccessRequests(ctx context.Context, sid string) ([]domain.AccessRequest, error)
	PreviousRequests(ctx context.Context, sid string) ([]domain.PreviousGrant, error)
	AddVitals(ctx context.Context, sid string, v domain.NewVitals) error
	ApproveAccess(ctx context.Context, sid, doctorAddress string, grantedAt int64) error
	RevokeAccess(ctx context.Context, sid, doctorAddress string, revokedAt int64) error
}
