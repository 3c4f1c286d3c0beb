package domain

import "time"

// DoctorRequest is one row of the doctor's outstanding access requests.
// The backend annotates each row with whether the patient has granted
// access yet; history can only be viewed once Granted is true.
type DoctorRequest struct {
	DoctorAddress  string
	PatientAddress string
	Granted        bool
}

// AccessRequest is one pending request as seen by the patient: a doctor
// asking to read this patient's history.
type AccessRequest struct {
	DoctorAddress string
}

// PreviousGrant is a resolved access grant retained for audit display.
type PreviousGrant struct {
	DoctorAddress string
	GrantedAt     time.Time
	RevokedAt     time.Time
}
