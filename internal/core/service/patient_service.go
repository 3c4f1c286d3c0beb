package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
)

// PatientService drives the patient's dashboard: vital-sign submission and
// the approve/revoke side of the access-grant workflow.
type PatientService struct {
	backend ports.Backend
	logger  zerolog.Logger
	now     func() time.Time
}

func NewPatientService(backend ports.Backend, logger zerolog.Logger) *PatientService {
	return &PatientService{backend: backend, logger: logger, now: time.Now}
}

// Dashboard fetches the four data sources concurrently. Each section keeps
// its own error; a failed fetch never blocks or blanks the other three.
// No ordering is guaranteed between the fetches.
func (s *PatientService) Dashboard(ctx context.Context, sid string) ports.PatientDashboard {
	var d ports.PatientDashboard

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		d.Current, d.CurrentErr = s.backend.CurrentVitals(ctx, sid)
	}()
	go func() {
		defer wg.Done()
		d.History, d.HistoryErr = s.backend.VitalsHistory(ctx, sid)
	}()
	go func() {
		defer wg.Done()
		d.Pending, d.PendingErr = s.backend.AccessRequests(ctx, sid)
	}()
	go func() {
		defer wg.Done()
		d.Previous, d.PreviousErr = s.backend.PreviousRequests(ctx, sid)
	}()
	wg.Wait()

	for _, err := range []error{d.CurrentErr, d.HistoryErr, d.PendingErr, d.PreviousErr} {
		if err != nil {
			s.logger.Warn().Err(err).Msg("patient dashboard fetch failed")
		}
	}
	return d
}

func (s *PatientService) SubmitVitals(ctx context.Context, sid string, v domain.NewVitals) error {
	if err := s.backend.AddVitals(ctx, sid, v); err != nil {
		return err
	}
	s.logger.Info().Msg("vital-sign record submitted")
	return nil
}

// Approve grants the doctor access, stamped with the submission time in
// unix seconds. The pending list is only pruned after this returns nil.
func (s *PatientService) Approve(ctx context.Context, sid, doctorAddress string) error {
	if err := s.backend.ApproveAccess(ctx, sid, doctorAddress, s.now().Unix()); err != nil {
		return err
	}
	s.logger.Info().Str("doctor_address", doctorAddress).Msg("access approved")
	return nil
}

func (s *PatientService) Revoke(ctx context.Context, sid, doctorAddress string) error {
	if err := s.backend.RevokeAccess(ctx, sid, doctorAddress, s.now().Unix()); err != nil {
		return err
	}
	s.logger.Info().Str("doctor_address", doctorAddress).Msg("access revoked")
	return nil
}
