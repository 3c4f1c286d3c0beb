package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
)

// DoctorService drives the doctor's side of the access-grant workflow.
type DoctorService struct {
	backend ports.Backend
	logger  zerolog.Logger
}

func NewDoctorService(backend ports.Backend, logger zerolog.Logger) *DoctorService {
	return &DoctorService{backend: backend, logger: logger}
}

func (s *DoctorService) PendingRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error) {
	return s.backend.DoctorRequests(ctx, sid)
}

func (s *DoctorService) RequestAccess(ctx context.Context, sid, patientAddress string) error {
	if patientAddress == "" {
		return &domain.BackendError{Status: 400, Detail: "patient address is required"}
	}
	if err := s.backend.RequestAccess(ctx, sid, patientAddress); err != nil {
		return err
	}
	s.logger.Info().Str("patient_address", patientAddress).Msg("access requested")
	return nil
}

// PatientHistory returns a freshly decoded value on every call; nothing is
// cached or mutated in place, so overlapping views can never observe a
// partially written history.
func (s *DoctorService) PatientHistory(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error) {
	return s.backend.PatientHistoryFor(ctx, sid, patientAddress)
}
