package backend

import (
	"encoding/json"
	"testing"
	"time"
)

func TestVitalsTuple_Decode(t *testing.T) {
	raw := `["alice", 45, 170, 70, 120, 80, 95, "cough", "low-carb", "2025-06-01T12:00:00"]`

	var row vitalsTuple
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if row.Name != "alice" || row.Age != 45 || row.Height != 170 || row.Weight != 70 {
		t.Fatalf("unexpected fields: %+v", row.VitalRecord)
	}
	if row.Systolic != 120 || row.Diastolic != 80 || row.BloodSugar != 95 {
		t.Fatalf("unexpected vitals: %+v", row.VitalRecord)
	}
	if row.Symptoms != "cough" || row.Diet != "low-carb" {
		t.Fatalf("unexpected text fields: %+v", row.VitalRecord)
	}
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !row.Timestamp.Equal(want) {
		t.Fatalf("expected %v, got %v", want, row.Timestamp)
	}
}

func TestVitalsTuple_TooShort(t *testing.T) {
	var row vitalsTuple
	if err := json.Unmarshal([]byte(`["alice", 45]`), &row); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestDoctorRequestRow_Decode(t *testing.T) {
	raw := `[["0xDOC", "0xPAT", true], [["Has Access!"]]]`

	var row doctorRequestRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if row.DoctorAddress != "0xDOC" {
		t.Fatalf("expected doctor 0xDOC, got %s", row.DoctorAddress)
	}
	if row.PatientAddress != "0xPAT" {
		t.Fatalf("expected patient 0xPAT, got %s", row.PatientAddress)
	}
	if !row.Granted {
		t.Fatalf("expected granted")
	}
}

func TestDoctorRequestRow_NoAccess(t *testing.T) {
	raw := `[["0xDOC", "0xPAT"], [["No Access!"]]]`

	var row doctorRequestRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if row.Granted {
		t.Fatalf("expected not granted")
	}
}

func TestPendingRow_Decode(t *testing.T) {
	raw := `["0xABC", "0xPAT", false, 0, 0]`

	var row pendingRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if row.DoctorAddress != "0xABC" {
		t.Fatalf("expected doctor 0xABC, got %s", row.DoctorAddress)
	}
}

func TestPreviousRow_Decode(t *testing.T) {
	raw := `["0xABC", "0xPAT", false, 1748750400, 1748754000]`

	var row previousRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if row.DoctorAddress != "0xABC" {
		t.Fatalf("expected doctor 0xABC, got %s", row.DoctorAddress)
	}
	if row.GrantedAt.Unix() != 1748750400 {
		t.Fatalf("unexpected granted-at: %v", row.GrantedAt)
	}
	if row.RevokedAt.Unix() != 1748754000 {
		t.Fatalf("unexpected revoked-at: %v", row.RevokedAt)
	}
}

func TestAPITime_Formats(t *testing.T) {
	cases := []struct {
		raw  string
		zero bool
	}{
		{`"2025-06-01T12:00:00Z"`, false},
		{`"2025-06-01T12:00:00.123456"`, false},
		{`"2025-06-01T12:00:00"`, false},
		{`1748750400`, false},
		{`0`, true},
		{`null`, true},
	}
	for _, tc := range cases {
		var ts apiTime
		if err := json.Unmarshal([]byte(tc.raw), &ts); err != nil {
			t.Fatalf("%s: decode failed: %v", tc.raw, err)
		}
		if ts.IsZero() != tc.zero {
			t.Fatalf("%s: expected zero=%v, got %v", tc.raw, tc.zero, ts.Time)
		}
	}

	var ts apiTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for junk timestamp")
	}
}

func TestPatientHistoryResponse_Decode(t *testing.T) {
	raw := `{
		"current_data": ["alice", 45, 170, 70, 120, 80, 95, "cough", "low-carb", "2025-06-01T12:00:00"],
		"history": [
			["alice", 44, 170, 71, 118, 79, 92, "", "", "2025-05-01T12:00:00"]
		]
	}`

	var resp patientHistoryResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	hist := resp.toDomain()
	if hist.Current.Name != "alice" || hist.Current.Age != 45 {
		t.Fatalf("unexpected current: %+v", hist.Current)
	}
	if len(hist.History) != 1 || hist.History[0].Age != 44 {
		t.Fatalf("unexpected history: %+v", hist.History)
	}
}
