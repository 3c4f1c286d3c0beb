package ports

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

type DoctorService interface {
	// PendingRequests lists the doctor's outstanding access requests.
	PendingRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error)
	// RequestAccess submits a new request for the given patient address.
	RequestAccess(ctx context.Context, sid, patientAddress string) error
	// PatientHistory fetches the selected patient's current snapshot plus
	// history. Fails with domain.ErrAccessDenied when no grant is active.
	PatientHistory(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error)
}
