package backend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// The backend serialises several payloads as fixed-position arrays straight
// off its storage layer. Everything positional is decoded here, once, into
// named domain types; no component beyond this file indexes rows by number.

// apiTime decodes the backend's timestamp spellings: ISO-8601 strings with
// or without zone and fraction, or unix seconds. Zero means "no data".
type apiTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				t.Time = parsed
				return nil
			}
		}
		return fmt.Errorf("unrecognised timestamp %q", raw)
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("unrecognised timestamp %s", s)
	}
	if secs == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}

// vitalsObject mirrors the object form of a record (the patient's own
// endpoints).
type vitalsObject struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Height     int     `json:"height"`
	Weight     int     `json:"weight"`
	Systolic   int     `json:"systolic"`
	Diastolic  int     `json:"diastolic"`
	BloodSugar int     `json:"bloodsugar"`
	Symptoms   string  `json:"symptoms"`
	Diet       string  `json:"diet"`
	Timestamp  apiTime `json:"timestamp"`
}

func (v vitalsObject) toDomain() domain.VitalRecord {
	return domain.VitalRecord{
		Name:       v.Name,
		Age:        v.Age,
		Height:     v.Height,
		Weight:     v.Weight,
		Systolic:   v.Systolic,
		Diastolic:  v.Diastolic,
		BloodSugar: v.BloodSugar,
		Symptoms:   v.Symptoms,
		Diet:       v.Diet,
		Timestamp:  v.Timestamp.Time,
	}
}

// vitalsTuple is the positional form used by the doctor's view:
// [name, age, height, weight, systolic, diastolic, blood sugar,
// symptoms, diet, timestamp].
type vitalsTuple struct {
	domain.VitalRecord
}

func (v *vitalsTuple) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("vitals row: %w", err)
	}
	if len(raw) < 10 {
		return fmt.Errorf("vitals row: expected 10 fields, got %d", len(raw))
	}

	fields := []struct {
		idx  int
		dest any
	}{
		{0, &v.Name},
		{1, &v.Age},
		{2, &v.Height},
		{3, &v.Weight},
		{4, &v.Systolic},
		{5, &v.Diastolic},
		{6, &v.BloodSugar},
		{7, &v.Symptoms},
		{8, &v.Diet},
	}
	for _, f := range fields {
		if err := json.Unmarshal(raw[f.idx], f.dest); err != nil {
			return fmt.Errorf("vitals row field %d: %w", f.idx, err)
		}
	}

	var ts apiTime
	if err := json.Unmarshal(raw[9], &ts); err != nil {
		return fmt.Errorf("vitals row timestamp: %w", err)
	}
	v.Timestamp = ts.Time
	return nil
}

// patientHistoryResponse is the doctor-patient-data payload.
type patientHistoryResponse struct {
	CurrentData vitalsTuple   `json:"current_data"`
	History     []vitalsTuple `json:"history"`
}

func (p patientHistoryResponse) toDomain() domain.PatientHistory {
	history := make([]domain.VitalRecord, 0, len(p.History))
	for _, h := range p.History {
		history = append(history, h.VitalRecord)
	}
	return domain.PatientHistory{
		Current: p.CurrentData.VitalRecord,
		History: history,
	}
}

// grantedAnnotation is the literal the backend attaches to a doctor-request
// row once the patient has approved it.
const grantedAnnotation = "Has Access!"

// doctorRequestRow is a two-level structure: the request tuple
// (doctor address, patient address, ...) wrapped together with a list of
// status annotation tuples.
type doctorRequestRow struct {
	domain.DoctorRequest
}

func (r *doctorRequestRow) UnmarshalJSON(b []byte) error {
	var outer []json.RawMessage
	if err := json.Unmarshal(b, &outer); err != nil {
		return fmt.Errorf("doctor request row: %w", err)
	}
	if len(outer) < 1 {
		return fmt.Errorf("doctor request row: empty")
	}

	var request []json.RawMessage
	if err := json.Unmarshal(outer[0], &request); err != nil {
		return fmt.Errorf("doctor request row: %w", err)
	}
	if len(request) < 2 {
		return fmt.Errorf("doctor request row: expected 2 addresses, got %d", len(request))
	}
	if err := json.Unmarshal(request[0], &r.DoctorAddress); err != nil {
		return fmt.Errorf("doctor request row doctor address: %w", err)
	}
	if err := json.Unmarshal(request[1], &r.PatientAddress); err != nil {
		return fmt.Errorf("doctor request row patient address: %w", err)
	}

	if len(outer) >= 2 {
		var annotations [][]string
		if err := json.Unmarshal(outer[1], &annotations); err == nil &&
			len(annotations) > 0 && len(annotations[0]) > 0 {
			r.Granted = annotations[0][0] == grantedAnnotation
		}
	}
	return nil
}

// pendingRow is a pending access request from the patient's view; only the
// leading doctor address is meaningful client-side.
type pendingRow struct {
	domain.AccessRequest
}

func (r *pendingRow) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("pending request row: %w", err)
	}
	if len(raw) < 1 {
		return fmt.Errorf("pending request row: empty")
	}
	if err := json.Unmarshal(raw[0], &r.DoctorAddress); err != nil {
		return fmt.Errorf("pending request row doctor address: %w", err)
	}
	return nil
}

// previousRow is a resolved grant: index 0 the doctor address, index 3 the
// granted-at and index 4 the revoked-at unix timestamps.
type previousRow struct {
	domain.PreviousGrant
}

func (r *previousRow) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("previous request row: %w", err)
	}
	if len(raw) < 5 {
		return fmt.Errorf("previous request row: expected 5 fields, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &r.DoctorAddress); err != nil {
		return fmt.Errorf("previous request row doctor address: %w", err)
	}

	var granted, revoked apiTime
	if err := json.Unmarshal(raw[3], &granted); err != nil {
		return fmt.Errorf("previous request row granted-at: %w", err)
	}
	if err := json.Unmarshal(raw[4], &revoked); err != nil {
		return fmt.Errorf("previous request row revoked-at: %w", err)
	}
	r.GrantedAt = granted.Time
	r.RevokedAt = revoked.Time
	return nil
}
