package backend

import (
	"context"
	"net/http"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// Login exchanges credentials for a token pair. Unauthenticated; the caller
// persists the pair.
func (c *Client) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, "login", http.MethodPost, "/login", "", payload, &resp); err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: resp.Access, Refresh: resp.Refresh}, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	payload := map[string]any{
		"username":   reg.Username,
		"password":   reg.Password,
		"first_name": reg.FirstName,
		"last_name":  reg.LastName,
		"email":      reg.Email,
		"user_type":  int(reg.UserType),
		"address":    reg.Address,
	}
	return c.do(ctx, "register", http.MethodPost, "/register", "", payload, nil)
}

func (c *Client) UserType(ctx context.Context, sid string) (domain.Role, error) {
	var resp struct {
		UserType int `json:"user_type"`
	}
	if err := c.do(ctx, "user_type", http.MethodGet, "/api/user-type/", sid, nil, &resp); err != nil {
		return domain.RoleUnknown, err
	}
	return domain.Role(resp.UserType), nil
}

func (c *Client) DoctorRequests(ctx context.Context, sid string) ([]domain.DoctorRequest, error) {
	var rows []doctorRequestRow
	if err := c.do(ctx, "doctor_requests", http.MethodGet, "/api/doctor-requests/", sid, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.DoctorRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.DoctorRequest)
	}
	return out, nil
}

func (c *Client) RequestAccess(ctx context.Context, sid, patientAddress string) error {
	payload := map[string]string{"patient_address": patientAddress}
	return c.do(ctx, "request_access", http.MethodPost, "/api/request-access/", sid, payload, nil)
}

func (c *Client) PatientHistoryFor(ctx context.Context, sid, patientAddress string) (domain.PatientHistory, error) {
	var resp patientHistoryResponse
	path := "/api/doctor-patient-data/" + patientAddress + "/"
	if err := c.do(ctx, "doctor_patient_data", http.MethodGet, path, sid, nil, &resp); err != nil {
		return domain.PatientHistory{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) CurrentVitals(ctx context.Context, sid string) (domain.VitalRecord, error) {
	var resp vitalsObject
	if err := c.do(ctx, "patient_data", http.MethodGet, "/api/patient-data/", sid, nil, &resp); err != nil {
		return domain.VitalRecord{}, err
	}
	return resp.toDomain(), nil
}

func (c *Client) VitalsHistory(ctx context.Context, sid string) ([]domain.VitalRecord, error) {
	var rows []vitalsObject
	if err := c.do(ctx, "patient_data_history", http.MethodGet, "/api/patient-data-history/", sid, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.VitalRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (c *Client) AccessRequests(ctx context.Context, sid string) ([]domain.AccessRequest, error) {
	var rows []pendingRow
	if err := c.do(ctx, "access_requests", http.MethodGet, "/api/access-requests/", sid, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.AccessRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.AccessRequest)
	}
	return out, nil
}

func (c *Client) PreviousRequests(ctx context.Context, sid string) ([]domain.PreviousGrant, error) {
	var rows []previousRow
	if err := c.do(ctx, "previous_requests", http.MethodGet, "/api/previous-requests/", sid, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.PreviousGrant, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.PreviousGrant)
	}
	return out, nil
}

// AddVitals posts one new record; the numeric fields go out as integers.
func (c *Client) AddVitals(ctx context.Context, sid string, v domain.NewVitals) error {
	payload := map[string]any{
		"age":        v.Age,
		"height":     v.Height,
		"weight":     v.Weight,
		"systolic":   v.Systolic,
		"diastolic":  v.Diastolic,
		"bloodsugar": v.BloodSugar,
		"symptoms":   v.Symptoms,
		"diet":       v.Diet,
	}
	return c.do(ctx, "add_patient_data", http.MethodPost, "/api/add-patient-data/", sid, payload, nil)
}

func (c *Client) ApproveAccess(ctx context.Context, sid, doctorAddress string, grantedAt int64) error {
	payload := map[string]any{
		"doctor_address": doctorAddress,
		"time_granted":   grantedAt,
	}
	return c.do(ctx, "approve_access", http.MethodPost, "/api/approve-access/", sid, payload, nil)
}

func (c *Client) RevokeAccess(ctx context.Context, sid, doctorAddress string, revokedAt int64) error {
	payload := map[string]any{
		"doctor_address": doctorAddress,
		"time_revoked":   revokedAt,
	}
	return c.do(ctx, "revoke_access", http.MethodPost, "/api/revoke-access/", sid, payload, nil)
}
