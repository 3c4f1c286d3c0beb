package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/web"
	"github.com/pghd/records-dashboard/internal/web/handler"
	"github.com/pghd/records-dashboard/internal/web/middleware"
)

var testCookie = middleware.SessionCookie{Name: "pghd_session", TTL: time.Hour}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	return e
}

// newFormContext builds a POST context carrying form values and an
// authenticated session, the way the auth middleware would leave it.
func newFormContext(t *testing.T, e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSessionID, "sid-1")
	return c, rec
}

func newGetContext(t *testing.T, e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSessionID, "sid-1")
	return c, rec
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != location {
		t.Fatalf("expected redirect to %s, got %s", location, loc)
	}
}

// stubAuth implements ports.AuthService with overridable calls.
type stubAuth struct {
	LoginFn    func(ctx context.Context, username, password string) (string, domain.Role, error)
	RegisterFn func(ctx context.Context, reg domain.Registration) error
	LogoutFn   func(ctx context.Context, sid string) error
	ResolveFn  func(ctx context.Context, sid string) (domain.Role, error)
}

func (s *stubAuth) Login(ctx context.Context, username, password string) (string, domain.Role, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "", domain.RoleUnknown, domain.ErrInvalidCredentials
}

func (s *stubAuth) Register(ctx context.Context, reg domain.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return nil
}

func (s *stubAuth) Logout(ctx context.Context, sid string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, sid)
	}
	return nil
}

func (s *stubAuth) Resolve(ctx context.Context, sid string) (domain.Role, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, sid)
	}
	return domain.RoleUnknown, domain.ErrUnauthenticated
}

// stubDoctor implements ports.DoctorService.
type stubDoctor struct {
	PendingRequestsFn func(ctx context.Context, sid string) ([]domain.DoctorRequest, error)
	RequestAccessFn   func(ctx context.Context, sid, patientAddress string) error
	PatientHistoryFn  func(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error)
}

func (s *stubDoctor) PendingRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error) {
	if s.PendingRequestsFn != nil {
		return s.PendingRequestsFn(ctx, sid)
	}
	return nil, nil
}

func (s *stubDoctor) RequestAccess(ctx context.Context, sid, patientAddress string) error {
	if s.RequestAccessFn != nil {
		return s.RequestAccessFn(ctx, sid, patientAddress)
	}
	return nil
}

func (s *stubDoctor) PatientHistory(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error) {
	if s.PatientHistoryFn != nil {
		return s.PatientHistoryFn(ctx, sid, patientAddress)
	}
	return domain.PatientHistory{}, nil
}

// stubPatient implements ports.PatientService.
type stubPatient struct {
	DashboardFn    func(ctx context.Context, sid string) ports.PatientDashboard
	SubmitVitalsFn func(ctx context.Context, sid string, v domain.NewVitals) error
	ApproveFn      func(ctx context.Context, sid, doctorAddress string) error
	RevokeFn       func(ctx context.Context, sid, doctorAddress string) error
}

func (s *stubPatient) Dashboard(ctx context.Context, sid string) ports.PatientDashboard {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, sid)
	}
	return ports.PatientDashboard{}
}

func (s *stubPatient) SubmitVitals(ctx context.Context, sid string, v domain.NewVitals) error {
	if s.SubmitVitalsFn != nil {
		return s.SubmitVitalsFn(ctx, sid, v)
	}
	return nil
}

func (s *stubPatient) Approve(ctx context.Context, sid, doctorAddress string) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, sid, doctorAddress)
	}
	return nil
}

func (s *stubPatient) Revoke(ctx context.Context, sid, doctorAddress string) error {
	if s.RevokeFn != nil {
		return s.RevokeFn(ctx, sid, doctorAddress)
	}
	return nil
}
