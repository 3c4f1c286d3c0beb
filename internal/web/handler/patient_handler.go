package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/web/middleware"
)

// PatientHandler serves the patient dashboard: vital-sign entry, record
// history, and incoming access requests with approve/revoke actions.
type PatientHandler struct {
	patient ports.PatientService
}

func NewPatientHandler(patient ports.PatientService) *PatientHandler {
	return &PatientHandler{patient: patient}
}

// vitalsForm holds the raw text inputs; the numeric fields are parsed into
// integers before submission.
type vitalsForm struct {
	Age        string `form:"age" validate:"required"`
	Height     string `form:"height" validate:"required"`
	Weight     string `form:"weight" validate:"required"`
	Systolic   string `form:"systolic" validate:"required"`
	Diastolic  string `form:"diastolic" validate:"required"`
	BloodSugar string `form:"bloodsugar" validate:"required"`
	Symptoms   string `form:"symptoms"`
	Diet       string `form:"diet"`
}

func (f vitalsForm) parse() (domain.NewVitals, error) {
	var v domain.NewVitals
	fields := []struct {
		name string
		raw  string
		dest *int
	}{
		{"age", f.Age, &v.Age},
		{"height", f.Height, &v.Height},
		{"weight", f.Weight, &v.Weight},
		{"systolic", f.Systolic, &v.Systolic},
		{"diastolic", f.Diastolic, &v.Diastolic},
		{"blood sugar", f.BloodSugar, &v.BloodSugar},
	}
	for _, fld := range fields {
		n, err := strconv.Atoi(fld.raw)
		if err != nil {
			return domain.NewVitals{}, fmt.Errorf("%s must be a whole number", fld.name)
		}
		*fld.dest = n
	}
	v.Symptoms = f.Symptoms
	v.Diet = f.Diet
	return v, nil
}

type doctorActionForm struct {
	DoctorAddress string `form:"doctor_address" validate:"required"`
}

// patientDashboardView carries the four data sections, each with its own
// error banner, plus form state for a failed submit.
type patientDashboardView struct {
	Records     []domain.VitalRecord
	RecordsErr  string
	Pending     []domain.AccessRequest
	PendingErr  string
	Previous    []domain.PreviousGrant
	PreviousErr string

	Form        vitalsForm
	FormError   string
	ActionError string
	Flash       string
}

func newPatientDashboardView(d ports.PatientDashboard) patientDashboardView {
	view := patientDashboardView{
		Records:  d.Records(),
		Pending:  d.Pending,
		Previous: d.Previous,
	}
	if d.CurrentErr != nil {
		view.RecordsErr = errMessage(d.CurrentErr)
	} else if d.HistoryErr != nil {
		view.RecordsErr = errMessage(d.HistoryErr)
	}
	if d.PendingErr != nil {
		view.PendingErr = errMessage(d.PendingErr)
	}
	if d.PreviousErr != nil {
		view.PreviousErr = errMessage(d.PreviousErr)
	}
	return view
}

// Dashboard renders the four sections. Sections whose fetch failed show
// their own error; the rest render normally.
func (h *PatientHandler) Dashboard(c echo.Context) error {
	view := newPatientDashboardView(h.patient.Dashboard(c.Request().Context(), middleware.SessionID(c)))
	if c.QueryParam("submitted") == "1" {
		view.Flash = "Record submitted"
	}
	return c.Render(http.StatusOK, "patient_dashboard", view)
}

// SubmitVitals posts one new record. Success redirects back so the fresh
// render re-fetches history and the new record appears without a manual
// reload; failure re-renders with the entered values intact.
func (h *PatientHandler) SubmitVitals(c echo.Context) error {
	var form vitalsForm
	if err := c.Bind(&form); err != nil {
		return h.renderWithForm(c, form, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderWithForm(c, form, err.Error())
	}
	vitals, err := form.parse()
	if err != nil {
		return h.renderWithForm(c, form, err.Error())
	}

	if err := h.patient.SubmitVitals(c.Request().Context(), middleware.SessionID(c), vitals); err != nil {
		return h.renderWithForm(c, form, errMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/patient-dashboard?submitted=1")
}

// Approve grants a pending request. The row disappears only because the
// redirect re-fetches the pending list after the backend confirmed; a
// failure re-renders the unchanged list with the error.
func (h *PatientHandler) Approve(c echo.Context) error {
	return h.doctorAction(c, h.patient.Approve)
}

// Revoke withdraws a grant; same confirm-then-refetch shape as Approve.
func (h *PatientHandler) Revoke(c echo.Context) error {
	return h.doctorAction(c, h.patient.Revoke)
}

func (h *PatientHandler) doctorAction(c echo.Context, action func(ctx context.Context, sid, doctorAddress string) error) error {
	var form doctorActionForm
	if err := c.Bind(&form); err != nil {
		return h.renderWithAction(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderWithAction(c, err.Error())
	}

	if err := action(c.Request().Context(), middleware.SessionID(c), form.DoctorAddress); err != nil {
		return h.renderWithAction(c, errMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/patient-dashboard")
}

func (h *PatientHandler) renderWithForm(c echo.Context, form vitalsForm, msg string) error {
	view := newPatientDashboardView(h.patient.Dashboard(c.Request().Context(), middleware.SessionID(c)))
	view.Form = form
	view.FormError = msg
	return c.Render(http.StatusBadRequest, "patient_dashboard", view)
}

func (h *PatientHandler) renderWithAction(c echo.Context, msg string) error {
	view := newPatientDashboardView(h.patient.Dashboard(c.Request().Context(), middleware.SessionID(c)))
	view.ActionError = msg
	return c.Render(http.StatusBadRequest, "patient_dashboard", view)
}
