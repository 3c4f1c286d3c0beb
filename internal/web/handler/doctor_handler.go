package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/web/middleware"
)

// DoctorHandler serves the doctor dashboard: submitting access requests,
// listing outstanding ones, and viewing a granted patient's history.
type DoctorHandler struct {
	doctor ports.DoctorService
}

func NewDoctorHandler(doctor ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctor: doctor}
}

type requestAccessForm struct {
	PatientAddress string `form:"patient_address" validate:"required"`
}

type doctorDashboardView struct {
	Requests []domain.DoctorRequest
	ListErr  string
	// Error and PatientAddress re-render a failed request-access submit
	// with the typed address intact.
	Error          string
	PatientAddress string
}

type patientHistoryView struct {
	PatientAddress string
	Current        domain.VitalRecord
	History        []domain.VitalRecord
	Error          string
}

// Dashboard lists the doctor's outstanding access requests. Every render
// goes through this one fetch, including the redirect after a successful
// request-access submit.
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	view := h.loadDashboard(c)
	return c.Render(http.StatusOK, "doctor_dashboard", view)
}

// RequestAccess submits a request for the given patient address. Success
// redirects back to the dashboard so the pending list is re-fetched; failure
// re-renders with the error and leaves the input intact.
func (h *DoctorHandler) RequestAccess(c echo.Context) error {
	var form requestAccessForm
	if err := c.Bind(&form); err != nil {
		view := h.loadDashboard(c)
		view.Error = "invalid form submission"
		return c.Render(http.StatusBadRequest, "doctor_dashboard", view)
	}
	if err := c.Validate(&form); err != nil {
		view := h.loadDashboard(c)
		view.Error = err.Error()
		return c.Render(http.StatusBadRequest, "doctor_dashboard", view)
	}

	if err := h.doctor.RequestAccess(c.Request().Context(), middleware.SessionID(c), form.PatientAddress); err != nil {
		view := h.loadDashboard(c)
		view.Error = errMessage(err)
		view.PatientAddress = form.PatientAddress
		return c.Render(http.StatusBadRequest, "doctor_dashboard", view)
	}

	return c.Redirect(http.StatusSeeOther, "/doctor-dashboard")
}

// PatientHistory renders the selected patient's current snapshot and
// historical records. Without an active grant the backend refuses and the
// page shows the denial instead of data.
func (h *DoctorHandler) PatientHistory(c echo.Context) error {
	address := c.Param("address")

	history, err := h.doctor.PatientHistory(c.Request().Context(), middleware.SessionID(c), address)
	if err != nil {
		return c.Render(http.StatusOK, "patient_history", patientHistoryView{
			PatientAddress: address,
			Error:          errMessage(err),
		})
	}

	return c.Render(http.StatusOK, "patient_history", patientHistoryView{
		PatientAddress: address,
		Current:        history.Current,
		History:        history.History,
	})
}

func (h *DoctorHandler) loadDashboard(c echo.Context) doctorDashboardView {
	requests, err := h.doctor.PendingRequests(c.Request().Context(), middleware.SessionID(c))
	view := doctorDashboardView{Requests: requests}
	if err != nil {
		view.ListErr = errMessage(err)
	}
	return view
}
