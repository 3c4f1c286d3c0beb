package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

func TestDoctorService_RequestAccess(t *testing.T) {
	var gotAddress string
	backend := &stubBackend{
		RequestAccessFn: func(_ context.Context, _ string, patientAddress string) error {
			gotAddress = patientAddress
			return nil
		},
	}
	svc := NewDoctorService(backend, zerolog.Nop())

	if err := svc.RequestAccess(context.Background(), "sid-1", "0xPAT"); err != nil {
		t.Fatalf("request access failed: %v", err)
	}
	if gotAddress != "0xPAT" {
		t.Fatalf("unexpected address %s", gotAddress)
	}
}

func TestDoctorService_RequestAccessEmptyAddress(t *testing.T) {
	called := false
	backend := &stubBackend{
		RequestAccessFn: func(_ context.Context, _, _ string) error {
			called = true
			return nil
		},
	}
	svc := NewDoctorService(backend, zerolog.Nop())

	err := svc.RequestAccess(context.Background(), "sid-1", "")
	var backendErr *domain.BackendError
	if !errors.As(err, &backendErr) || backendErr.Status != 400 {
		t.Fatalf("expected a 400 BackendError, got %v", err)
	}
	if called {
		t.Fatalf("backend must not be called with an empty address")
	}
}

func TestDoctorService_PatientHistoryDenied(t *testing.T) {
	backend := &stubBackend{
		PatientHistoryFn: func(_ context.Context, _, _ string) (domain.PatientHistory, error) {
			return domain.PatientHistory{}, &domain.BackendError{Status: 403, Detail: "no access"}
		},
	}
	svc := NewDoctorService(backend, zerolog.Nop())

	_, err := svc.PatientHistory(context.Background(), "sid-1", "0xPAT")
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
