package ports

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// PatientDashboard aggregates the four independent data sources behind the
// patient's view. Each section carries its own error so a failed fetch on
// one never blanks the others.
type PatientDashboard struct {
	Current     domain.VitalRecord
	CurrentErr  error
	History     []domain.VitalRecord
	HistoryErr  error
	Pending     []domain.AccessRequest
	PendingErr  error
	Previous    []domain.PreviousGrant
	PreviousErr error
}

// Records merges the current snapshot with whatever history arrived,
// newest first. Sections that failed simply contribute nothing.
func (d PatientDashboard) Records() []domain.VitalRecord {
	current := d.Current
	if d.CurrentErr != nil {
		current = domain.VitalRecord{}
	}
	history := d.History
	if d.HistoryErr != nil {
		history = nil
	}
	return domain.MergeHistory(current, history)
}

type PatientService interface {
	// Dashboard runs the four fetches concurrently and reports per-section
	// results. The returned value is always usable; only the per-section
	// errors signal trouble.
	Dashboard(ctx context.Context, sid string) PatientDashboard
	// SubmitVitals posts one new record. The caller re-renders the
	// dashboard afterwards so the record shows up without a manual reload.
	SubmitVitals(ctx context.Context, sid string, v domain.NewVitals) error
	// Approve grants the doctor access, stamped with the current time.
	Approve(ctx context.Context, sid, doctorAddress string) error
	// Revoke withdraws a grant, stamped with the current time.
	Revoke(ctx context.Context, sid, doctorAddress string) error
}
