package domain

import (
	"sort"
	"time"
)

// VitalRecord is one vital-sign entry for a patient. The backend ships these
// either as JSON objects (the patient's own endpoints) or as fixed-position
// arrays (the doctor's view); both are decoded into this type at the client
// boundary so nothing downstream ever indexes by position.
type VitalRecord struct {
	Name       string
	Age        int
	Height     int
	Weight     int
	Systolic   int
	Diastolic  int
	BloodSugar int
	Symptoms   string
	Diet       string
	Timestamp  time.Time
}

// Empty reports whether the record is a zeroed placeholder. The backend
// returns an all-zero row when a patient has no data yet.
func (r VitalRecord) Empty() bool {
	return r.Name == "" && r.Timestamp.IsZero()
}

// PatientHistory is the doctor's view of a patient: the current snapshot
// plus the historical records.
type PatientHistory struct {
	Current VitalRecord
	History []VitalRecord
}

// NewVitals is a record as entered by the patient, before the backend stamps
// name and timestamp onto it.
type NewVitals struct {
	Age        int
	Height     int
	Weight     int
	Systolic   int
	Diastolic  int
	BloodSugar int
	Symptoms   string
	Diet       string
}

// MergeHistory combines the current snapshot with the full history list the
// way the dashboard displays it: empty placeholder rows are dropped and the
// result is ordered newest first.
func MergeHistory(current VitalRecord, history []VitalRecord) []VitalRecord {
	merged := make([]VitalRecord, 0, len(history)+1)
	if !current.Empty() {
		merged = append(merged, current)
	}
	for _, r := range history {
		if !r.Empty() {
			merged = append(merged, r)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged
}
